package metrics

import (
	"time"

	"github.com/rollup-vm/multivm/module"
)

type NoopCollector struct{}

var (
	_ module.AdapterMetrics = (*NoopCollector)(nil)
	_ module.ReplayMetrics  = (*NoopCollector)(nil)
	_ module.CacheMetrics   = (*NoopCollector)(nil)
)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) ConversionCompleted(version string, kind string, status string) {}
func (nc *NoopCollector) ConversionFailed(version string, kind string, code string)      {}
func (nc *NoopCollector) BatchReplayed(duration time.Duration)                           {}
func (nc *NoopCollector) BatchQuarantined()                                              {}
func (nc *NoopCollector) ReplayedBatchNumber(number uint64)                              {}
func (nc *NoopCollector) CacheEntries(resource string, entries uint)                     {}
func (nc *NoopCollector) CacheHit(resource string)                                       {}
func (nc *NoopCollector) CacheNotFound(resource string)                                  {}
func (nc *NoopCollector) CacheMiss(resource string)                                      {}
