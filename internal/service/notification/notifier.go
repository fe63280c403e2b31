package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/KNICEX/fxsignal/internal/service/signal"
)

// Notifier 把事件格式化后推送到所有渠道
type Notifier struct {
	senders []Sender
}

func NewNotifier(senders ...Sender) *Notifier {
	return &Notifier{senders: senders}
}

func (n *Notifier) notify(ctx context.Context, ev signal.Event) error {
	msg := message(ev)
	var errs []error
	for _, s := range n.senders {
		if err := s.Send(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) OnNewSignal(ctx context.Context, ev signal.Event) error {
	return n.notify(ctx, ev)
}

func (n *Notifier) OnUpdateSignal(ctx context.Context, ev signal.Event) error {
	return n.notify(ctx, ev)
}

func (n *Notifier) OnFinishSignal(ctx context.Context, ev signal.Event) error {
	return n.notify(ctx, ev)
}

func (n *Notifier) OnCancelSignal(ctx context.Context, ev signal.Event) error {
	return n.notify(ctx, ev)
}
