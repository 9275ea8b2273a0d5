package storage

import (
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
)

// RawBlockResults stores the raw results of historical VMs, indexed by the
// number of the L1 batch they sealed.
type RawBlockResults interface {

	// Store inserts the raw result of the given batch.
	// Expected errors during normal operations:
	//   - storage.ErrAlreadyExists if a result for the batch is already stored
	Store(batch rollup.L1BatchNumber, raw legacy.BlockResult) error

	// ByBatchNumber returns the raw result of the given batch.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no result for the batch is stored
	ByBatchNumber(batch rollup.L1BatchNumber) (legacy.BlockResult, error)

	// BatchNumbers returns the numbers of all stored batches within the
	// inclusive range [from, to] in ascending order.
	BatchNumbers(from rollup.L1BatchNumber, to rollup.L1BatchNumber) ([]rollup.L1BatchNumber, error)

	// Replace stores the raw result of the given batch, replacing a result
	// that is already stored.
	Replace(batch rollup.L1BatchNumber, raw legacy.BlockResult) error
}

// FinishedL1Batches stores canonical sealed batches.
type FinishedL1Batches interface {

	// Store stores the sealed batch. A batch that is already stored is
	// replaced, so reading it back returns the latest seal.
	Store(batch rollup.L1BatchNumber, finished *execution.FinishedL1Batch) error

	// ByBatchNumber returns the sealed batch.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the batch has not been sealed
	ByBatchNumber(batch rollup.L1BatchNumber) (*execution.FinishedL1Batch, error)

	// Exists returns true if the batch has been sealed.
	Exists(batch rollup.L1BatchNumber) (bool, error)

	// Remove deletes the sealed batch.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the batch has not been sealed
	Remove(batch rollup.L1BatchNumber) error
}
