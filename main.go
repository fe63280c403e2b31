package main

import (
	"context"
	"log/slog"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/KNICEX/fxsignal/internal/service/monitor"
	"github.com/KNICEX/fxsignal/internal/service/signal"
	"github.com/KNICEX/fxsignal/ioc"
)

func main() {
	ioc.InitViper()
	ioc.InitLogger()

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := ioc.InitMetrics(ctx)
	source := ioc.InitSourceConfig()
	fetcher := ioc.InitFetcher(source)

	var opts []signal.DispatcherOption
	if refresher := ioc.InitPriceRefresher(fetcher, rec); refresher != nil {
		if err := refresher.Refresh(ctx); err != nil {
			slog.Warn("reference prices cannot be loaded", "error", err)
		}
		go refresher.Run(ctx)
		opts = append(opts, signal.WithReferencePrice(refresher))
	}

	dispatcher := signal.NewDispatcher(opts...)
	for _, l := range ioc.InitListeners(ioc.InitDB()) {
		dispatcher.Register(l)
	}
	tracker := signal.NewTracker(dispatcher)

	task := monitor.NewSignalMonitor(source.URL, fetcher, tracker, monitor.WithMetrics(rec))
	if err := ioc.InitPoller(task).Run(ctx); err != nil {
		slog.Error("signals cannot be loaded", "error", err)
	}
}
