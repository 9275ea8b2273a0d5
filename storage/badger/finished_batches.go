package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/module"
	"github.com/rollup-vm/multivm/module/metrics"
	"github.com/rollup-vm/multivm/storage"
	"github.com/rollup-vm/multivm/storage/badger/operation"
)

// FinishedL1Batches implements persistent storage for sealed batches, fronted
// by an LRU cache.
type FinishedL1Batches struct {
	db    *badger.DB
	cache *Cache[rollup.L1BatchNumber, *execution.FinishedL1Batch]
}

var _ storage.FinishedL1Batches = (*FinishedL1Batches)(nil)

func NewFinishedL1Batches(collector module.CacheMetrics, db *badger.DB, cacheSize uint) *FinishedL1Batches {
	store := func(batch rollup.L1BatchNumber, finished *execution.FinishedL1Batch) func(*badger.Txn) error {
		return operation.UpsertFinishedL1Batch(batch, finished)
	}

	retrieve := func(batch rollup.L1BatchNumber) func(*badger.Txn) (*execution.FinishedL1Batch, error) {
		return func(tx *badger.Txn) (*execution.FinishedL1Batch, error) {
			var finished execution.FinishedL1Batch
			err := operation.RetrieveFinishedL1Batch(batch, &finished)(tx)
			return &finished, err
		}
	}

	options := []func(*Cache[rollup.L1BatchNumber, *execution.FinishedL1Batch]){
		withStore(store),
		withRetrieve(retrieve),
	}
	if cacheSize > 0 {
		options = append(options, withLimit[rollup.L1BatchNumber, *execution.FinishedL1Batch](cacheSize))
	}

	return &FinishedL1Batches{
		db:    db,
		cache: newCache(collector, metrics.ResourceFinishedL1Batch, options...),
	}
}

// Store seals a batch. A batch that was sealed before is overwritten.
func (f *FinishedL1Batches) Store(batch rollup.L1BatchNumber, finished *execution.FinishedL1Batch) error {
	return f.cache.Put(f.db, batch, finished)
}

func (f *FinishedL1Batches) ByBatchNumber(batch rollup.L1BatchNumber) (*execution.FinishedL1Batch, error) {
	tx := f.db.NewTransaction(false)
	defer tx.Discard()
	return f.cache.Get(batch)(tx)
}

func (f *FinishedL1Batches) Exists(batch rollup.L1BatchNumber) (bool, error) {
	if f.cache.IsCached(batch) {
		return true, nil
	}
	var sealed bool
	err := f.db.View(operation.ExistsFinishedL1Batch(batch, &sealed))
	if err != nil {
		return false, fmt.Errorf("could not check sealed batch %d: %w", batch, err)
	}
	return sealed, nil
}

// Remove deletes a sealed batch, so it is sealed again on the next replay.
func (f *FinishedL1Batches) Remove(batch rollup.L1BatchNumber) error {
	err := f.db.Update(operation.RemoveFinishedL1Batch(batch))
	f.cache.Remove(batch)
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("could not remove sealed batch %d: %w", batch, err)
	}
	return nil
}
