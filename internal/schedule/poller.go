package schedule

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	MinDelay  = 15 * time.Second
	maxJitter = 10
)

// JitterDelay base 加上 [-10, 10] 秒的随机抖动, 且不低于 15 秒
func JitterDelay(base time.Duration, rnd *rand.Rand) time.Duration {
	var jitter int
	if rnd != nil {
		jitter = rnd.IntN(2*maxJitter+1) - maxJitter
	} else {
		jitter = rand.IntN(2*maxJitter+1) - maxJitter
	}
	return max(MinDelay, base+time.Duration(jitter)*time.Second)
}

// Poller 周期性执行任务. 任务失败只记录日志, 等待下一轮.
type Poller struct {
	task  Task
	base  time.Duration
	live  bool
	rnd   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

type PollerOption func(p *Poller)

// WithLive 持续轮询, 否则只执行一次
func WithLive(live bool) PollerOption {
	return func(p *Poller) {
		p.live = live
	}
}

func WithRand(rnd *rand.Rand) PollerOption {
	return func(p *Poller) {
		p.rnd = rnd
	}
}

func NewPoller(task Task, base time.Duration, opts ...PollerOption) *Poller {
	p := &Poller{
		task:  task,
		base:  base,
		sleep: sleepCtx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run 单次模式返回任务的错误; 持续模式直到 ctx 取消才返回
func (p *Poller) Run(ctx context.Context) error {
	if !p.live {
		return p.task.Run(ctx)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := p.task.Run(ctx); err != nil {
			slog.Error("poll cycle failed", "task", p.task.Name(), "error", err)
		}
		if ctx.Err() != nil {
			return nil
		}

		delay := JitterDelay(p.base, p.rnd)
		slog.Debug("waiting for next poll", "task", p.task.Name(), "delay", delay)
		if err := p.sleep(ctx, delay); err != nil {
			return nil
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
