package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
)

// UpsertFinishedL1Batch stores a sealed batch, replacing an earlier seal of the
// same batch.
func UpsertFinishedL1Batch(batch rollup.L1BatchNumber, finished *execution.FinishedL1Batch) func(*badger.Txn) error {
	return upsert(makePrefix(codeFinishedL1Batch, batch), finished)
}

func RetrieveFinishedL1Batch(batch rollup.L1BatchNumber, finished *execution.FinishedL1Batch) func(*badger.Txn) error {
	return retrieve(makePrefix(codeFinishedL1Batch, batch), finished)
}

func ExistsFinishedL1Batch(batch rollup.L1BatchNumber, sealed *bool) func(*badger.Txn) error {
	return exists(makePrefix(codeFinishedL1Batch, batch), sealed)
}

func RemoveFinishedL1Batch(batch rollup.L1BatchNumber) func(*badger.Txn) error {
	return remove(makePrefix(codeFinishedL1Batch, batch))
}
