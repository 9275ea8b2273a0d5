package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/storage"
	"github.com/rollup-vm/multivm/storage/badger/operation"
)

// RawBlockResults implements persistent storage for the raw results of
// historical VMs. Raw results are read once per replay, so they are not cached.
type RawBlockResults struct {
	db *badger.DB
}

var _ storage.RawBlockResults = (*RawBlockResults)(nil)

func NewRawBlockResults(db *badger.DB) *RawBlockResults {
	return &RawBlockResults{db: db}
}

func (r *RawBlockResults) Store(batch rollup.L1BatchNumber, raw legacy.BlockResult) error {
	return operation.RetryOnConflict(r.db.Update, operation.InsertRawBlockResult(batch, raw))
}

func (r *RawBlockResults) ByBatchNumber(batch rollup.L1BatchNumber) (legacy.BlockResult, error) {
	var raw legacy.BlockResult
	err := r.db.View(operation.RetrieveRawBlockResult(batch, &raw))
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Replace stores the raw result of a batch, dropping a stored result of the
// same batch within the same transaction.
func (r *RawBlockResults) Replace(batch rollup.L1BatchNumber, raw legacy.BlockResult) error {
	return operation.RetryOnConflict(r.db.Update, func(tx *badger.Txn) error {
		err := operation.SkipNonExist(operation.RemoveRawBlockResult(batch))(tx)
		if err != nil {
			return fmt.Errorf("could not remove raw result of batch %d: %w", batch, err)
		}
		return operation.InsertRawBlockResult(batch, raw)(tx)
	})
}

// Remove deletes the raw result of a batch.
func (r *RawBlockResults) Remove(batch rollup.L1BatchNumber) error {
	return r.db.Update(operation.RemoveRawBlockResult(batch))
}

func (r *RawBlockResults) BatchNumbers(from rollup.L1BatchNumber, to rollup.L1BatchNumber) ([]rollup.L1BatchNumber, error) {
	var batches []rollup.L1BatchNumber
	err := r.db.View(operation.LookupRawBatchNumbers(from, to, &batches))
	if err != nil {
		return nil, fmt.Errorf("could not look up batches in [%d, %d]: %w", from, to, err)
	}
	return batches, nil
}
