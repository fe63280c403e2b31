package signal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Dispatcher 把事件分发给所有监听者, 单个监听者失败不影响其他监听者
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
	reference ReferencePrice
	now       func() time.Time
}

type DispatcherOption func(d *Dispatcher)

// WithReferencePrice 事件中附带当前参考价
func WithReferencePrice(ref ReferencePrice) DispatcherOption {
	return func(d *Dispatcher) {
		d.reference = ref
	}
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register 重复注册同一个监听者会被忽略
func (d *Dispatcher) Register(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if lo.Contains(d.listeners, l) {
		return
	}
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) Dispatch(ctx context.Context, kind EventKind, s Signal) Event {
	ev := Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		Signal:  s,
		FiredAt: d.now(),
	}
	if d.reference != nil {
		if price, ok := d.reference.Price(s.CurrencyPair); ok {
			ev.ReferencePrice = decimal.NewNullDecimal(price)
		}
	}

	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.RUnlock()

	for _, l := range listeners {
		if err := d.deliver(ctx, l, ev); err != nil {
			slog.Error("listener failed to handle signal event",
				"event", kind, "pair", s.CurrencyPair, "listener", fmt.Sprintf("%T", l), "error", err)
		}
	}
	return ev
}

func (d *Dispatcher) deliver(ctx context.Context, l Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()

	switch ev.Kind {
	case EventNew:
		return l.OnNewSignal(ctx, ev)
	case EventUpdate:
		return l.OnUpdateSignal(ctx, ev)
	case EventFinish:
		return l.OnFinishSignal(ctx, ev)
	case EventCancel:
		return l.OnCancelSignal(ctx, ev)
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}
