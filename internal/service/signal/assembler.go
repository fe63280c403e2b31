package signal

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/KNICEX/fxsignal/internal/service/convert"
	"github.com/KNICEX/fxsignal/internal/service/extract"
	"github.com/shopspring/decimal"
)

var ErrTrendPriceMismatch = errors.New("trend indicator and price must appear together")

const (
	pairExpr   = `<a href="/signals/.+\.php" style="text-decoration:none;">(?P<currency_pair>.+/.+)</a></span>`
	actionExpr = `<div class="status"><span class=".+text">(?P<action>.+)</span></div>`
	windowExpr = `</div>From (?P<from>.+)<br>Till (?P<to>.+)<div class="status">`
	trendExpr  = `<img src="(?P<trend_img>/img/(buy|sell)\.png)">`
	priceExpr  = `(Buy|Sell) at <span class=".+text"><font size="\+2"><script type="text/javascript">f\('(?P<price>.+)'\);</script></font></span>`
)

// Assembler 把一段页面片段组装成一条信号
type Assembler struct {
	lines *extract.Extractor // 只用来切分和过滤候选行

	pair   extract.Rule
	action extract.Rule
	window extract.Rule
	trend  extract.Rule
	price  extract.Rule
}

type AssemblerOption func(a *Assembler)

// WithTimestamp 替换有效期字段使用的时间转换器
func WithTimestamp(ts *convert.Timestamp) AssemblerOption {
	return func(a *Assembler) {
		a.window.Mapper = convert.Mapper{"from": ts, "to": ts}
	}
}

func NewAssembler(opts ...AssemblerOption) *Assembler {
	ts := convert.NewTimestamp()
	a := &Assembler{
		pair:   extract.NewRule("currency_pair", pairExpr, nil),
		action: extract.NewRule("action", actionExpr, nil),
		window: extract.NewRule("window", windowExpr, convert.Mapper{"from": ts, "to": ts}),
		trend:  extract.NewRule("trend", trendExpr, nil),
		price:  extract.NewRule("price", priceExpr, nil),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.lines = extract.NewExtractor(nil,
		extract.WithLineFilter(func(line string) bool {
			return strings.HasPrefix(line, `<div class="symbol`) && strings.Contains(line, "GMT")
		}),
	)
	return a
}

// Assemble 货币对不匹配时返回 ok=false.
// params 为 nil 表示本轮没有解码参数, 此时信号不带价格.
func (a *Assembler) Assemble(fragment string, params *extract.CipherParams) (Signal, bool, error) {
	fields, err := a.pair.Extract(fragment)
	if err != nil || fields == nil {
		return Signal{}, false, err
	}
	s := Signal{
		CurrencyPair: strings.TrimSpace(str(fields["currency_pair"])),
	}

	fields, err = a.action.Extract(fragment)
	if err != nil {
		return Signal{}, false, err
	}
	if fields != nil {
		s.Action = Action(strings.TrimSpace(str(fields["action"])))
	} else {
		slog.Warn("signal fragment without action", "pair", s.CurrencyPair)
	}

	fields, err = a.window.Extract(fragment)
	if err != nil {
		return Signal{}, false, fmt.Errorf("%s validity window: %w", s.CurrencyPair, err)
	}
	if fields != nil {
		s.From, _ = fields["from"].(time.Time)
		s.To, _ = fields["to"].(time.Time)
	} else {
		slog.Warn("signal fragment without validity window", "pair", s.CurrencyPair)
	}

	if err = a.assemblePrice(fragment, params, &s); err != nil {
		return Signal{}, false, err
	}
	return s, true, nil
}

func (a *Assembler) assemblePrice(fragment string, params *extract.CipherParams, s *Signal) error {
	trend, err := a.trend.Extract(fragment)
	if err != nil {
		return err
	}

	price := a.price
	if params != nil {
		price.Mapper = convert.Mapper{"price": params.Converter()}
	}
	priceFields, err := price.Extract(fragment)
	if err != nil {
		return fmt.Errorf("%s price: %w", s.CurrencyPair, err)
	}

	if (trend == nil) != (priceFields == nil) {
		return fmt.Errorf("%w: %s", ErrTrendPriceMismatch, s.CurrencyPair)
	}
	if trend == nil {
		return nil
	}

	s.TrendImg = str(trend["trend_img"])
	if d, ok := priceFields["price"].(decimal.Decimal); ok {
		s.Price = decimal.NewNullDecimal(d)
	}
	return nil
}

// Collect 组装整页的信号, 失败的片段交给 onDrop 后丢弃.
// 结果按有效期开始时间升序排列.
func (a *Assembler) Collect(page string, params *extract.CipherParams, onDrop func(fragment string, err error)) []Signal {
	var signals []Signal
	for _, line := range a.lines.Lines(page) {
		s, ok, err := a.Assemble(line, params)
		if err != nil {
			if onDrop != nil {
				onDrop(line, err)
			}
			continue
		}
		if ok {
			signals = append(signals, s)
		}
	}

	slices.SortStableFunc(signals, func(x, y Signal) int {
		return x.From.Compare(y.From)
	})
	return signals
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
