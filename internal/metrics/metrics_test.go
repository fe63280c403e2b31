package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(reg)

	p.PollResult(PollOK)
	p.PollResult(PollOK)
	p.PollResult(PollFetchFailed)
	p.EventFired("new_signal")
	p.FragmentDropped("mismatch")
	p.ActiveSignals(3)
	p.ReferenceRefresh("scrape", nil)
	p.ReferenceRefresh("scrape", errors.New("down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(p.polls.WithLabelValues(PollOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.polls.WithLabelValues(PollFetchFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.events.WithLabelValues("new_signal")))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.active))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.refreshes.WithLabelValues("scrape", "error")))
}
