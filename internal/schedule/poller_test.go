package schedule

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterDelay(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	testCases := []struct {
		name     string
		base     time.Duration
		min, max time.Duration
	}{
		{name: "default delay", base: 30 * time.Second, min: 20 * time.Second, max: 40 * time.Second},
		{name: "below floor", base: 5 * time.Second, min: MinDelay, max: MinDelay},
		{name: "zero", base: 0, min: MinDelay, max: MinDelay},
		{name: "near floor", base: 20 * time.Second, min: MinDelay, max: 30 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				d := JitterDelay(tc.base, rnd)
				assert.GreaterOrEqual(t, d, tc.min)
				assert.LessOrEqual(t, d, tc.max)
				assert.Zero(t, d%time.Second)
			}
		})
	}

	assert.GreaterOrEqual(t, JitterDelay(0, nil), MinDelay)
}

type countingTask struct {
	runs   int
	err    error
	cancel context.CancelFunc
	stopAt int
	onRun  func()
}

func (c *countingTask) Run(ctx context.Context) error {
	c.runs++
	if c.onRun != nil {
		c.onRun()
	}
	if c.runs == c.stopAt && c.cancel != nil {
		c.cancel()
	}
	return c.err
}

func (c *countingTask) Name() string {
	return "counting"
}

func TestPoller_SingleShot(t *testing.T) {
	task := &countingTask{err: errors.New("fetch failed")}
	p := NewPoller(task, 30*time.Second)

	err := p.Run(context.Background())
	assert.EqualError(t, err, "fetch failed")
	assert.Equal(t, 1, task.runs)
}

func TestPoller_LiveKeepsGoingOnFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := &countingTask{err: errors.New("fetch failed"), cancel: cancel, stopAt: 3}

	var slept []time.Duration
	p := NewPoller(task, 0, WithLive(true))
	p.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	require.NoError(t, p.Run(ctx))
	assert.Equal(t, 3, task.runs)
	assert.Equal(t, []time.Duration{MinDelay, MinDelay}, slept)
}

func TestPoller_StopInterruptsSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{}, 1)
	task := &countingTask{onRun: func() { started <- struct{}{} }}
	p := NewPoller(task, time.Hour, WithLive(true))

	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.Equal(t, 1, task.runs)
}
