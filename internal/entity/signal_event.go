package entity

import (
	"time"
)

// SignalEvent 已触发的信号事件, 只追加不回读
type SignalEvent struct {
	Id             int64  `gorm:"primaryKey;autoIncrement"`
	EventId        string `gorm:"uniqueIndex;size:36"`
	Kind           string `gorm:"index"`
	CurrencyPair   string `gorm:"index"`
	Action         string
	Price          string // 无价格时为空
	TrendImg       string
	ReferencePrice string
	ValidFrom      time.Time
	ValidTo        time.Time
	FiredAt        time.Time `gorm:"index"`
	CreatedAt      time.Time
}
