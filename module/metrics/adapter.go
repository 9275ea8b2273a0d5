package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rollup-vm/multivm/module"
)

var _ module.AdapterMetrics = (*AdapterCollector)(nil)

type AdapterCollector struct {
	conversions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

func NewAdapterCollector(registerer prometheus.Registerer) *AdapterCollector {
	factory := promauto.With(registerer)

	return &AdapterCollector{
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemAdapter,
			Name:      "conversions_total",
			Help:      "number of raw vm results converted into canonical results",
		}, []string{LabelVersion, LabelKind, LabelStatus}),

		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemAdapter,
			Name:      "conversion_failures_total",
			Help:      "number of raw vm results that could not be converted",
		}, []string{LabelVersion, LabelKind, LabelCode}),
	}
}

func (ac *AdapterCollector) ConversionCompleted(version string, kind string, status string) {
	ac.conversions.WithLabelValues(version, kind, status).Inc()
}

func (ac *AdapterCollector) ConversionFailed(version string, kind string, code string) {
	ac.failures.WithLabelValues(version, kind, code).Inc()
}
