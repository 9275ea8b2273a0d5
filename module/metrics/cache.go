package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rollup-vm/multivm/module"
)

var _ module.CacheMetrics = (*CacheCollector)(nil)

type CacheCollector struct {
	entries  *prometheus.GaugeVec
	hits     *prometheus.CounterVec
	notFound *prometheus.CounterVec
	misses   *prometheus.CounterVec
}

func NewCacheCollector(registerer prometheus.Registerer) *CacheCollector {
	factory := promauto.With(registerer)

	return &CacheCollector{
		entries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemCache,
			Name:      "entries_total",
			Help:      "the number of entries in the storage cache",
		}, []string{LabelResource}),

		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemCache,
			Name:      "hits_total",
			Help:      "the number of hits for the storage cache",
		}, []string{LabelResource}),

		notFound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemCache,
			Name:      "notfound_total",
			Help:      "the number of times the queried item was not found in either cache or database",
		}, []string{LabelResource}),

		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceMultiVM,
			Subsystem: subsystemCache,
			Name:      "misses_total",
			Help:      "the number of misses for the storage cache",
		}, []string{LabelResource}),
	}
}

func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.WithLabelValues(resource).Set(float64(entries))
}

func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.WithLabelValues(resource).Inc()
}

func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notFound.WithLabelValues(resource).Inc()
}

func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.WithLabelValues(resource).Inc()
}
