package ioc

import (
	"os"
	"path/filepath"

	"github.com/KNICEX/fxsignal/internal/repo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type archiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn" default:"./data/fxsignal.db" validate:"required"`
}

// InitDB 未开启事件归档时返回 nil
func InitDB() *gorm.DB {
	var cfg archiveConfig
	unmarshalKey("archive", &cfg)
	if !cfg.Enabled {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
		panic(err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic(err)
	}
	if err = repo.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
