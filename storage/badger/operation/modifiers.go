package operation

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/sethvargo/go-retry"

	"github.com/rollup-vm/multivm/storage"
)

const (
	conflictRetries = 10
	conflictBackoff = time.Millisecond
)

// SkipNonExist turns a storage.ErrNotFound from op into success.
func SkipNonExist(op func(*badger.Txn) error) func(tx *badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := op(tx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
}

// RetryOnConflict re-runs the transaction while badger reports a conflict
// with a concurrent writer, up to conflictRetries times.
func RetryOnConflict(action func(func(*badger.Txn) error) error, op func(tx *badger.Txn) error) error {
	backoff := retry.WithMaxRetries(conflictRetries, retry.NewConstant(conflictBackoff))
	return retry.Do(context.Background(), backoff, func(context.Context) error {
		err := action(op)
		if errors.Is(err, badger.ErrConflict) {
			return retry.RetryableError(err)
		}
		return err
	})
}
