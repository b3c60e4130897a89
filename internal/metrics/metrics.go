package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts transfers by direction, mode and status
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_transfers_total",
			Help: "Total number of bridge transfers",
		},
		[]string{"direction", "mode", "status"},
	)

	// TransferDuration tracks transfer processing time
	TransferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_transfer_duration_seconds",
			Help:    "Transfer processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction"},
	)

	// TransferAmount tracks the wire amount transferred, in whole tokens
	TransferAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_transfer_amount",
			Help:    "Amount of tokens transferred",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 100, 1000, 10000},
		},
		[]string{"direction"},
	)

	// DustTotal counts native units truncated by normalization
	DustTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_dust_native_units_total",
			Help: "Native units left behind by 8-decimal normalization",
		},
		[]string{"mode"},
	)

	// ReplayRejections counts inbound messages rejected as already processed
	ReplayRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_replay_rejections_total",
			Help: "Inbound messages rejected because they were already processed",
		},
	)

	// EmitterRegistrations counts emitter upserts by foreign chain
	EmitterRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_emitter_registrations_total",
			Help: "Foreign emitter registrations by chain",
		},
		[]string{"chain"},
	)

	// ErrorsTotal counts errors by operation and kind
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_errors_total",
			Help: "Total number of errors",
		},
		[]string{"operation", "kind"},
	)

	// LastSequence tracks the last outbound sequence number
	LastSequence = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_last_sequence",
			Help: "Sequence number of the last posted outbound message",
		},
	)
)
