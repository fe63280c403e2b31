package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	PollOK          = "ok"
	PollFetchFailed = "fetch_failed"
	PollNoCipher    = "no_cipher"
)

type Recorder interface {
	PollResult(result string)
	PollDuration(d time.Duration)
	EventFired(kind string)
	FragmentDropped(reason string)
	ActiveSignals(n int)
	ReferenceRefresh(source string, err error)
}

// Prometheus 基于 prometheus 的指标记录
type Prometheus struct {
	polls        *prometheus.CounterVec
	pollDuration prometheus.Histogram
	events       *prometheus.CounterVec
	dropped      *prometheus.CounterVec
	active       prometheus.Gauge
	refreshes    *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		polls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fxsignal_polls_total",
			Help: "Poll cycles by result",
		}, []string{"result"}),
		pollDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxsignal_poll_duration_seconds",
			Help:    "Duration of one fetch-parse-diff cycle",
			Buckets: prometheus.DefBuckets,
		}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fxsignal_events_total",
			Help: "Signal lifecycle events fired",
		}, []string{"kind"}),
		dropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fxsignal_fragments_dropped_total",
			Help: "Signal fragments rejected while assembling",
		}, []string{"reason"}),
		active: f.NewGauge(prometheus.GaugeOpts{
			Name: "fxsignal_active_signals",
			Help: "Signals currently tracked as active",
		}),
		refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fxsignal_reference_refresh_total",
			Help: "Reference price refreshes by source and result",
		}, []string{"source", "result"}),
	}
}

func (p *Prometheus) PollResult(result string) {
	p.polls.WithLabelValues(result).Inc()
}

func (p *Prometheus) PollDuration(d time.Duration) {
	p.pollDuration.Observe(d.Seconds())
}

func (p *Prometheus) EventFired(kind string) {
	p.events.WithLabelValues(kind).Inc()
}

func (p *Prometheus) FragmentDropped(reason string) {
	p.dropped.WithLabelValues(reason).Inc()
}

func (p *Prometheus) ActiveSignals(n int) {
	p.active.Set(float64(n))
}

func (p *Prometheus) ReferenceRefresh(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.refreshes.WithLabelValues(source, result).Inc()
}

// Nop 不记录任何指标
type Nop struct{}

func (Nop) PollResult(string)              {}
func (Nop) PollDuration(time.Duration)     {}
func (Nop) EventFired(string)              {}
func (Nop) FragmentDropped(string)         {}
func (Nop) ActiveSignals(int)              {}
func (Nop) ReferenceRefresh(string, error) {}

// Serve 在 addr 上暴露 /metrics, ctx 取消后关闭
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server stopped", "error", err)
	}
}
