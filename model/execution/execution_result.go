package execution

import (
	"github.com/rollup-vm/multivm/model/rollup"
)

// Logs are the ordered logs emitted while executing a transaction or the
// block tip.
type Logs struct {
	Events               []rollup.Event
	L2ToL1Logs           []rollup.L2ToL1Log
	StorageLogs          []rollup.StorageLogQuery
	TotalLogQueriesCount uint64
}

// Statistics are the execution counters reported by the VM.
//
// ComputationalGasUsed is a sub-metric of GasUsed. Versions that could not
// report it define it per the adapter policy, either as zero or as GasUsed.
type Statistics struct {
	ContractsUsed        uint64
	CyclesUsed           uint32
	TotalLogQueries      uint64
	ComputationalGasUsed uint32
	GasUsed              uint32
}

// Refunds are the gas amounts returned after execution.
//
// For historical batches produced before refund tracking existed this is
// always the zero value, which must be read as "unknown, assume none".
type Refunds struct {
	GasRefunded             uint32
	OperatorSuggestedRefund uint32
}

// IsZero returns true if no refund was recorded.
func (r Refunds) IsZero() bool {
	return r == Refunds{}
}

// ResultAndLogs is the canonical result of executing a single transaction or
// the block tip of a batch.
type ResultAndLogs struct {
	Outcome    Outcome
	Logs       Logs
	Statistics Statistics
	Refunds    Refunds
}
