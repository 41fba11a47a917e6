package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/PyEED/aligner/core/engine"
)

var _ engine.Ticker = (*Collector)(nil)

func newTestCollector() *Collector {
	// Fresh registry per test to avoid duplicate registration.
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	return NewCollector()
}

func TestTickCountsPairs(t *testing.T) {
	c := newTestCollector()
	for i := 0; i < 5; i++ {
		c.Tick()
	}
	assert.Equal(t, 5.0, testutil.ToFloat64(c.pairs))
}

func TestRecordResultClassifies(t *testing.T) {
	c := newTestCollector()
	score := 3
	c.RecordResult(engine.Result{Score: &score, Elapsed: time.Millisecond})
	c.RecordResult(engine.Result{Score: nil})
	c.RecordResult(engine.Result{Score: &score, Elapsed: 2 * time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.aligned))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.skipped))
	assert.Equal(t, 1, testutil.CollectAndCount(c.elapsed))
}

func TestSkippedPairsStayOutOfHistogram(t *testing.T) {
	c := newTestCollector()
	c.RecordResult(engine.Result{Score: nil, Elapsed: time.Second})
	assert.Equal(t, 0.0, testutil.ToFloat64(c.aligned))
}
