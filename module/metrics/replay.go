package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rollup-vm/multivm/module"
)

var _ module.ReplayMetrics = (*ReplayCollector)(nil)

type ReplayCollector struct {
	batchDuration       prometheus.Histogram
	batchesQuarantined  prometheus.Counter
	replayedBatchNumber prometheus.Gauge
}

func NewReplayCollector(registerer prometheus.Registerer) *ReplayCollector {
	factory := promauto.With(registerer)

	return &ReplayCollector{
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemReplay,
			Name:      "batch_duration_seconds",
			Help:      "time spent loading, converting and storing a single batch",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),

		batchesQuarantined: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemReplay,
			Name:      "batches_quarantined_total",
			Help:      "number of batches whose raw record could not be converted",
		}),

		replayedBatchNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemReplay,
			Name:      "replayed_batch_number",
			Help:      "highest batch number stored by the replay",
		}),
	}
}

func (rc *ReplayCollector) BatchReplayed(duration time.Duration) {
	rc.batchDuration.Observe(duration.Seconds())
}

func (rc *ReplayCollector) BatchQuarantined() {
	rc.batchesQuarantined.Inc()
}

func (rc *ReplayCollector) ReplayedBatchNumber(number uint64) {
	rc.replayedBatchNumber.Set(float64(number))
}
