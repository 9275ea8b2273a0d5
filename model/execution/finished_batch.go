package execution

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/rollup-vm/multivm/model/rollup"
)

// CurrentExecutionState is the cumulative state of a batch once all of its
// transactions and the block tip have been executed.
type CurrentExecutionState struct {
	Events             []rollup.Event
	StorageLogQueries  []rollup.StorageLogQuery
	UsedContractHashes []common.Hash
	L2ToL1Logs         []rollup.L2ToL1Log
	TotalLogQueries    uint64
	CyclesUsed         uint32
	// StorageRefunds is empty for every version that predates refund tracking.
	StorageRefunds []rollup.StorageRefund
}

// MemoryWord is a single word of bootloader heap memory.
type MemoryWord struct {
	Index uint32
	Value uint256.Int
}

// BootloaderMemory is a snapshot of the bootloader heap, needed only to
// produce witnesses for proof generation.
type BootloaderMemory []MemoryWord

// FinishedL1Batch is the canonical result of sealing a batch.
type FinishedL1Batch struct {
	BlockTipExecutionResult ResultAndLogs
	FinalExecutionState     CurrentExecutionState
	// FinalBootloaderMemory is nil when the producing VM did not expose its
	// memory. Witnesses are never generated for finalized historical batches.
	FinalBootloaderMemory *BootloaderMemory
}

// HasBootloaderMemory returns true if a bootloader memory snapshot is present.
func (b FinishedL1Batch) HasBootloaderMemory() bool {
	return b.FinalBootloaderMemory != nil
}
