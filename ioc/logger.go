package ioc

import (
	"log/slog"
	"os"
)

func InitLogger() {
	type Config struct {
		Level  string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `mapstructure:"format" default:"text" validate:"oneof=text json"`
	}

	var cfg Config
	unmarshalKey("log", &cfg)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
