package operation

import (
	"fmt"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/storage"
	"github.com/rollup-vm/multivm/utils/unittest"
)

func TestSkipNonExist(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		require.ErrorIs(t, db.Update(RemoveFinishedL1Batch(3)), storage.ErrNotFound)
		require.NoError(t, db.Update(SkipNonExist(RemoveFinishedL1Batch(3))))

		failing := func(*badger.Txn) error { return fmt.Errorf("boom") }
		require.Error(t, db.Update(SkipNonExist(failing)))
	})
}

func TestRetryOnConflict(t *testing.T) {
	op := func(*badger.Txn) error { return nil }

	t.Run("retries until the conflict clears", func(t *testing.T) {
		calls := 0
		action := func(func(*badger.Txn) error) error {
			calls++
			if calls < 3 {
				return badger.ErrConflict
			}
			return nil
		}

		require.NoError(t, RetryOnConflict(action, op))
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors are returned at once", func(t *testing.T) {
		calls := 0
		action := func(func(*badger.Txn) error) error {
			calls++
			return storage.ErrNotFound
		}

		require.ErrorIs(t, RetryOnConflict(action, op), storage.ErrNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up on a persistent conflict", func(t *testing.T) {
		calls := 0
		action := func(func(*badger.Txn) error) error {
			calls++
			return badger.ErrConflict
		}

		require.ErrorIs(t, RetryOnConflict(action, op), badger.ErrConflict)
		assert.Equal(t, conflictRetries+1, calls)
	})
}
