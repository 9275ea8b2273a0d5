package badger

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/module/metrics"
	"github.com/rollup-vm/multivm/storage"
	"github.com/rollup-vm/multivm/utils/unittest"
)

func TestCache(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		retrieved := 0
		values := map[uint32]string{1: "one", 2: "two"}

		cache := newCache(metrics.NewNoopCollector(), metrics.ResourceUndefined,
			withLimit[uint32, string](1),
			withRetrieve(func(key uint32) func(*badger.Txn) (string, error) {
				return func(*badger.Txn) (string, error) {
					retrieved++
					value, ok := values[key]
					if !ok {
						return "", storage.ErrNotFound
					}
					return value, nil
				}
			}))

		tx := db.NewTransaction(false)
		defer tx.Discard()

		value, err := cache.Get(1)(tx)
		require.NoError(t, err)
		assert.Equal(t, "one", value)
		assert.True(t, cache.IsCached(1))

		_, err = cache.Get(1)(tx)
		require.NoError(t, err)
		assert.Equal(t, 1, retrieved)

		// the limit evicts the least recently used entry
		_, err = cache.Get(2)(tx)
		require.NoError(t, err)
		assert.False(t, cache.IsCached(1))

		_, err = cache.Get(3)(tx)
		require.ErrorIs(t, err, storage.ErrNotFound)
		assert.False(t, cache.IsCached(3))

		cache.Remove(2)
		assert.False(t, cache.IsCached(2))

		// no store function was provided
		err = cache.Put(db, 4, "four")
		require.Error(t, err)
		assert.False(t, cache.IsCached(4))
	})
}
