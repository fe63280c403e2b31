package archive

import (
	"context"

	"github.com/KNICEX/fxsignal/internal/entity"
	"github.com/KNICEX/fxsignal/internal/repo"
	"github.com/KNICEX/fxsignal/internal/service/signal"
)

// Recorder 把每个事件写入事件日志. 只写不读, tracker 重启后不会从这里恢复.
type Recorder struct {
	repo repo.SignalEventRepo
}

func NewRecorder(repo repo.SignalEventRepo) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) record(ctx context.Context, ev signal.Event) error {
	s := ev.Signal
	row := entity.SignalEvent{
		EventId:      ev.ID,
		Kind:         ev.Kind.String(),
		CurrencyPair: s.CurrencyPair,
		Action:       string(s.Action),
		TrendImg:     s.TrendImg,
		ValidFrom:    s.From,
		ValidTo:      s.To,
		FiredAt:      ev.FiredAt,
	}
	if s.Price.Valid {
		row.Price = s.Price.Decimal.String()
	}
	if ev.ReferencePrice.Valid {
		row.ReferencePrice = ev.ReferencePrice.Decimal.String()
	}
	_, err := r.repo.Create(ctx, row)
	return err
}

func (r *Recorder) OnNewSignal(ctx context.Context, ev signal.Event) error {
	return r.record(ctx, ev)
}

func (r *Recorder) OnUpdateSignal(ctx context.Context, ev signal.Event) error {
	return r.record(ctx, ev)
}

func (r *Recorder) OnFinishSignal(ctx context.Context, ev signal.Event) error {
	return r.record(ctx, ev)
}

func (r *Recorder) OnCancelSignal(ctx context.Context, ev signal.Event) error {
	return r.record(ctx, ev)
}
