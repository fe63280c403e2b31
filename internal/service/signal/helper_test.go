package signal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KNICEX/fxsignal/internal/service/convert"
	"github.com/KNICEX/fxsignal/internal/service/extract"
)

var testParams = &extract.CipherParams{Key: "716845203.9", Offset: 67}

type fragmentParts struct {
	pair     string
	action   string
	from, to string
	trend    string
	price    string
}

// fragment 生成与源站相同结构的一行 html
func fragment(f fragmentParts) string {
	var sb strings.Builder
	sb.WriteString(`<div class="symbol">`)
	if f.pair != "" {
		slug := strings.ToLower(strings.ReplaceAll(f.pair, "/", ""))
		fmt.Fprintf(&sb, `<span class="pair"><a href="/signals/%s.php" style="text-decoration:none;">%s</a></span>`, slug, f.pair)
	}
	if f.trend != "" {
		fmt.Fprintf(&sb, `<img src="/img/%s.png">`, f.trend)
	}
	if f.price != "" {
		fmt.Fprintf(&sb, `Buy at <span class="green-text"><font size="+2"><script type="text/javascript">f('%s');</script></font></span>`, f.price)
	}
	sb.WriteString(`</div>`)
	if f.from != "" {
		fmt.Fprintf(&sb, `From %s<br>Till %s`, f.from, f.to)
	} else {
		sb.WriteString(`GMT`)
	}
	sb.WriteString(`<div class="status">`)
	if f.action != "" {
		fmt.Fprintf(&sb, `<span class="green-text">%s</span></div>`, f.action)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func testAssembler() *Assembler {
	ts := convert.NewTimestamp(
		convert.WithClock(func() time.Time { return time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC) }),
		convert.WithLocation(time.UTC),
	)
	return NewAssembler(WithTimestamp(ts))
}

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2026, month, day, hour, min, 0, 0, time.UTC)
}

// recorder 按顺序记录收到的事件
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) add(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) OnNewSignal(ctx context.Context, ev Event) error    { return r.add(ev) }
func (r *recorder) OnUpdateSignal(ctx context.Context, ev Event) error { return r.add(ev) }
func (r *recorder) OnFinishSignal(ctx context.Context, ev Event) error { return r.add(ev) }
func (r *recorder) OnCancelSignal(ctx context.Context, ev Event) error { return r.add(ev) }

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]EventKind, 0, len(r.events))
	for _, ev := range r.events {
		res = append(res, ev.Kind)
	}
	return res
}
