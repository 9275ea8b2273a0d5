package module

import (
	"time"
)

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// AdapterMetrics encapsulates the metrics collectors of the version adapter.
type AdapterMetrics interface {
	// ConversionCompleted reports a successful conversion of a raw result of
	// the given vm version into the given canonical kind, labeled with the
	// resulting outcome status.
	ConversionCompleted(version string, kind string, status string)

	// ConversionFailed reports a raw result that could not be converted,
	// labeled with the failure code of the error.
	ConversionFailed(version string, kind string, code string)
}

// ReplayMetrics encapsulates the metrics collectors of historical batch replay.
type ReplayMetrics interface {
	// BatchReplayed reports the time spent loading, converting and storing a
	// single batch.
	BatchReplayed(duration time.Duration)

	// BatchQuarantined reports a batch whose raw record could not be converted.
	BatchQuarantined()

	// ReplayedBatchNumber reports the highest batch number stored so far.
	ReplayedBatchNumber(number uint64)
}
