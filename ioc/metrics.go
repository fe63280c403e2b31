package ioc

import (
	"context"

	"github.com/KNICEX/fxsignal/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
)

// InitMetrics 配置了 metrics.addr 时才暴露 http 接口
func InitMetrics(ctx context.Context) metrics.Recorder {
	addr := viper.GetString("metrics.addr")
	if addr == "" {
		return metrics.Nop{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)
	go metrics.Serve(ctx, addr, reg)
	return rec
}
