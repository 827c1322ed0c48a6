package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOrderMetrics(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())

	m.RecordOrderPlaced("ok")
	m.RecordOrderPlaced("ok")
	m.RecordTransition("PENDING", "ACCEPTED")
	m.RecordRejected("accept", "invalid_transition")
	m.RecordCompletion(90)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersPlacedTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrderTransitionsTotal.WithLabelValues("PENDING", "ACCEPTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrderRejectedOpsTotal.WithLabelValues("accept", "invalid_transition")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OrderCompletionSeconds))
}

func TestVoteMetricsSeparateRegistries(t *testing.T) {
	// each registry gets its own collectors, so constructing twice must not panic
	first := NewVoteMetrics(prometheus.NewRegistry())
	second := NewVoteMetrics(prometheus.NewRegistry())

	first.RecordVoteAction("created")
	first.RecordScoreSinkError()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.VoteActionsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(first.ScoreSinkErrorsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.ScoreSinkErrorsTotal))
}
