package repo

import (
	"github.com/KNICEX/fxsignal/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.SignalEvent{})
}
