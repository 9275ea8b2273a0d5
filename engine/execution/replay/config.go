package replay

import (
	"runtime"
)

// Config holds the settings of a replay run.
type Config struct {
	// Workers is the number of batches converted concurrently.
	Workers int
	// CacheSize is the number of sealed batches kept in memory.
	CacheSize uint
	// StopOnFailure stops the run at the first batch that fails to convert.
	// Otherwise failing batches are quarantined and the run continues.
	StopOnFailure bool
	// Reseal converts batches that have been sealed before again and replaces
	// their stored results. A batch that fails to convert during a reseal
	// loses its earlier seal.
	Reseal bool
}

func DefaultConfig() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		CacheSize:     100,
		StopOnFailure: false,
		Reseal:        false,
	}
}
