package signal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionBuy       Action = "Buy"
	ActionSell      Action = "Sell"
	ActionPending   Action = "Pending"
	ActionFilled    Action = "Filled"
	ActionCancelled Action = "Cancelled"
)

// Terminal 终态信号会从活跃集合中移除
func (a Action) Terminal() bool {
	return a == ActionFilled || a == ActionCancelled
}

// Signal 一个货币对的交易信号
type Signal struct {
	CurrencyPair string
	Action       Action
	Price        decimal.NullDecimal // 只有带趋势图标时才有价格
	TrendImg     string
	From         time.Time // 本地时间
	To           time.Time
}

// Equal 逐字段比较
func (s Signal) Equal(o Signal) bool {
	if s.CurrencyPair != o.CurrencyPair || s.Action != o.Action || s.TrendImg != o.TrendImg {
		return false
	}
	if s.Price.Valid != o.Price.Valid {
		return false
	}
	if s.Price.Valid && !s.Price.Decimal.Equal(o.Price.Decimal) {
		return false
	}
	return s.From.Equal(o.From) && s.To.Equal(o.To)
}

type EventKind int

const (
	EventNew EventKind = iota + 1
	EventUpdate
	EventFinish
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventNew:
		return "new_signal"
	case EventUpdate:
		return "update_signal"
	case EventFinish:
		return "finish_signal"
	case EventCancel:
		return "cancel_signal"
	default:
		return "unknown"
	}
}

// Event 推送给监听者的事件
type Event struct {
	ID             string
	Kind           EventKind
	Signal         Signal
	ReferencePrice decimal.NullDecimal // 当前参考中间价, 取不到时为空
	FiredAt        time.Time
}

// Listener 信号生命周期监听者, 返回的错误只会被记录
type Listener interface {
	OnNewSignal(ctx context.Context, ev Event) error
	OnUpdateSignal(ctx context.Context, ev Event) error
	OnFinishSignal(ctx context.Context, ev Event) error
	OnCancelSignal(ctx context.Context, ev Event) error
}

// NopListener 嵌入后只需实现关心的事件
type NopListener struct{}

func (NopListener) OnNewSignal(ctx context.Context, ev Event) error    { return nil }
func (NopListener) OnUpdateSignal(ctx context.Context, ev Event) error { return nil }
func (NopListener) OnFinishSignal(ctx context.Context, ev Event) error { return nil }
func (NopListener) OnCancelSignal(ctx context.Context, ev Event) error { return nil }

// ReferencePrice 按货币对查询当前参考价
type ReferencePrice interface {
	Price(currencyPair string) (decimal.Decimal, bool)
}
