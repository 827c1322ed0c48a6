package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the order workflow.
type OrderMetrics struct {
	OrdersPlacedTotal      *prometheus.CounterVec
	OrderTransitionsTotal  *prometheus.CounterVec
	OrderRejectedOpsTotal  *prometheus.CounterVec
	ConfirmationsTotal     *prometheus.CounterVec
	OrderCompletionSeconds prometheus.Histogram
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		OrdersPlacedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_orders_placed_total",
				Help: "Orders placed between a service author and a customer",
			},
			[]string{"result"},
		),

		OrderTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_order_transitions_total",
				Help: "Committed order status transitions",
			},
			[]string{"from", "to"},
		),

		OrderRejectedOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_order_rejected_operations_total",
				Help: "Order operations rejected by the workflow",
			},
			[]string{"operation", "reason"},
		),

		ConfirmationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_order_confirmations_total",
				Help: "Confirmation flags written per party",
			},
			[]string{"role"},
		),

		OrderCompletionSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "deal_order_completion_seconds",
				Help:    "Time from order creation to dual confirmation",
				Buckets: prometheus.ExponentialBuckets(60, 4, 10), // 1m, 4m, 16m...
			},
		),
	}
}

func (m *OrderMetrics) RecordOrderPlaced(result string) {
	m.OrdersPlacedTotal.WithLabelValues(result).Inc()
}

func (m *OrderMetrics) RecordTransition(from, to string) {
	m.OrderTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *OrderMetrics) RecordRejected(operation, reason string) {
	m.OrderRejectedOpsTotal.WithLabelValues(operation, reason).Inc()
}

func (m *OrderMetrics) RecordConfirmation(role string) {
	m.ConfirmationsTotal.WithLabelValues(role).Inc()
}

func (m *OrderMetrics) RecordCompletion(durationSeconds float64) {
	m.OrderCompletionSeconds.Observe(durationSeconds)
}

// VoteMetrics covers the vote ledger.
type VoteMetrics struct {
	VoteActionsTotal      *prometheus.CounterVec
	ScoreSinkErrorsTotal  prometheus.Counter
	ScoreRecomputeSeconds prometheus.Histogram
}

func NewVoteMetrics(reg prometheus.Registerer) *VoteMetrics {
	factory := promauto.With(reg)
	return &VoteMetrics{
		VoteActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_vote_actions_total",
				Help: "Committed vote mutations by action",
			},
			[]string{"action"},
		),

		ScoreSinkErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "deal_vote_score_sink_errors_total",
				Help: "Failed updates of cached subject counters",
			},
		),

		ScoreRecomputeSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "deal_vote_score_recompute_seconds",
				Help:    "Time spent recomputing a subject score from its votes",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms, 2ms, 4ms...
			},
		),
	}
}

func (m *VoteMetrics) RecordVoteAction(action string) {
	m.VoteActionsTotal.WithLabelValues(action).Inc()
}

func (m *VoteMetrics) RecordScoreSinkError() {
	m.ScoreSinkErrorsTotal.Inc()
}

func (m *VoteMetrics) RecordScoreRecompute(durationSeconds float64) {
	m.ScoreRecomputeSeconds.Observe(durationSeconds)
}
