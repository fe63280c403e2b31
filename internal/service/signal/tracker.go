package signal

import (
	"context"
	"sync"

	"github.com/samber/lo"
)

// Tracker 维护活跃信号集合, 根据每轮的信号决定触发的事件.
// 活跃集合只能通过 Process 修改, 不会保存终态信号.
type Tracker struct {
	mu         sync.Mutex
	active     map[string]Signal
	dispatcher *Dispatcher
}

func NewTracker(dispatcher *Dispatcher) *Tracker {
	return &Tracker{
		active:     make(map[string]Signal),
		dispatcher: dispatcher,
	}
}

// Process 返回本次触发的事件类型, 没有事件时 fired 为 false
func (t *Tracker) Process(ctx context.Context, s Signal) (kind EventKind, fired bool) {
	kind, fired = t.transition(s)
	if fired {
		t.dispatcher.Dispatch(ctx, kind, s)
	}
	return kind, fired
}

func (t *Tracker) transition(s Signal) (EventKind, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := s.CurrencyPair
	current, ok := t.active[key]
	if !ok {
		// 没见过的终态信号直接忽略
		if s.Action.Terminal() {
			return 0, false
		}
		t.active[key] = s
		return EventNew, true
	}

	if current.Equal(s) {
		return 0, false
	}

	switch s.Action {
	case ActionFilled:
		delete(t.active, key)
		return EventFinish, true
	case ActionCancelled:
		delete(t.active, key)
		return EventCancel, true
	default:
		t.active[key] = s
		return EventUpdate, true
	}
}

// ProcessBatch 按顺序处理一轮的信号, 返回触发的事件
func (t *Tracker) ProcessBatch(ctx context.Context, signals []Signal) []EventKind {
	var fired []EventKind
	for _, s := range signals {
		if kind, ok := t.Process(ctx, s); ok {
			fired = append(fired, kind)
		}
	}
	return fired
}

// Active 返回活跃信号的快照
func (t *Tracker) Active() []Signal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Values(t.active)
}
