package repo

import (
	"context"

	"github.com/KNICEX/fxsignal/internal/entity"
	"gorm.io/gorm"
)

type SignalEventRepo interface {
	Create(ctx context.Context, ev entity.SignalEvent) (int64, error)
	FindByPair(ctx context.Context, pair string, limit int) ([]entity.SignalEvent, error)
}

type signalEventRepo struct {
	db *gorm.DB
}

func NewSignalEventRepo(db *gorm.DB) SignalEventRepo {
	return &signalEventRepo{
		db: db,
	}
}

func (r *signalEventRepo) Create(ctx context.Context, ev entity.SignalEvent) (int64, error) {
	err := r.db.WithContext(ctx).Create(&ev).Error
	if err != nil {
		return 0, err
	}
	return ev.Id, nil
}

// FindByPair 按触发时间倒序
func (r *signalEventRepo) FindByPair(ctx context.Context, pair string, limit int) ([]entity.SignalEvent, error) {
	var events []entity.SignalEvent
	err := r.db.WithContext(ctx).
		Where("currency_pair = ?", pair).
		Order("fired_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
