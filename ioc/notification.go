package ioc

import (
	"log/slog"
	"os"

	"github.com/KNICEX/fxsignal/internal/repo"
	"github.com/KNICEX/fxsignal/internal/service/archive"
	"github.com/KNICEX/fxsignal/internal/service/notification"
	"github.com/KNICEX/fxsignal/internal/service/signal"
	"gorm.io/gorm"
)

// InitListeners 终端输出总是开启, 其余按配置注册
func InitListeners(db *gorm.DB) []signal.Listener {
	type Config struct {
		Enabled  bool `mapstructure:"enabled" default:"true"`
		Desktop  bool `mapstructure:"desktop" default:"true"`
		Telegram struct {
			Token  string `mapstructure:"token"`
			ChatID string `mapstructure:"chat_id" validate:"required_with=Token"`
		} `mapstructure:"telegram"`
	}

	var cfg Config
	unmarshalKey("notify", &cfg)

	listeners := []signal.Listener{notification.NewConsolePrinter(os.Stdout)}
	if db != nil {
		listeners = append(listeners, archive.NewRecorder(repo.NewSignalEventRepo(db)))
	}
	if !cfg.Enabled {
		return listeners
	}

	var senders []notification.Sender
	if cfg.Desktop {
		desktop := notification.NewDesktopSender()
		if desktop.Available() {
			senders = append(senders, desktop)
		} else {
			slog.Warn("notify-send not found, desktop notifications disabled")
		}
	}
	if cfg.Telegram.Token != "" {
		senders = append(senders, notification.NewTelegramSender(cfg.Telegram.Token, cfg.Telegram.ChatID))
	}
	if len(senders) > 0 {
		listeners = append(listeners, notification.NewNotifier(senders...))
	}
	return listeners
}
