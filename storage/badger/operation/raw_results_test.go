package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fvmerrors "github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/storage"
	"github.com/rollup-vm/multivm/utils/unittest"
)

func TestRawBlockResultInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		for i, version := range legacy.AllVersions() {
			batch := rollup.L1BatchNumber(100 + i)
			expected := unittest.BlockResultFixture(version)

			err := db.Update(InsertRawBlockResult(batch, expected))
			require.NoError(t, err)

			var actual legacy.BlockResult
			err = db.View(RetrieveRawBlockResult(batch, &actual))
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		}
	})
}

func TestRawBlockResultWithFailureDescriptors(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.V2BlockResultFixture(func(r *legacy.V2BlockResult) {
			r.FullResult.RevertReason = &legacy.VmRevertReasonParsingResult{
				RevertReason: *unittest.TxRevertReasonFixture(legacy.TxRevertTxReverted),
				OriginalData: []byte{0x08, 0xc3, 0x79, 0xa0},
			}
			r.BlockTipResult.RevertReason = unittest.TxRevertReasonFixture(legacy.TxRevertUnexpectedVMBehavior)
		})

		require.NoError(t, db.Update(InsertRawBlockResult(7, &expected)))

		var actual legacy.BlockResult
		require.NoError(t, db.View(RetrieveRawBlockResult(7, &actual)))
		// pointers are stored in value form
		assert.Equal(t, expected, actual)
	})
}

func TestRawBlockResultErrors(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		raw := unittest.V1BlockResultFixture()

		t.Run("duplicate insert", func(t *testing.T) {
			require.NoError(t, db.Update(InsertRawBlockResult(1, raw)))
			err := db.Update(InsertRawBlockResult(1, raw))
			require.ErrorIs(t, err, storage.ErrAlreadyExists)
		})

		t.Run("missing result", func(t *testing.T) {
			var actual legacy.BlockResult
			err := db.View(RetrieveRawBlockResult(2, &actual))
			require.ErrorIs(t, err, storage.ErrNotFound)
			require.Nil(t, actual)
		})

		t.Run("nil result", func(t *testing.T) {
			var typedNil *legacy.V3BlockResult
			err := db.Update(InsertRawBlockResult(3, typedNil))
			require.True(t, fvmerrors.IsUnsupportedVersionFailure(err))
		})

		t.Run("unknown version in envelope", func(t *testing.T) {
			envelope := rawBlockResultEnvelope{Version: legacy.Version(9), Payload: []byte{0xc0}}
			require.NoError(t, db.Update(insert(makePrefix(codeRawBlockResult, rollup.L1BatchNumber(4)), &envelope)))

			var actual legacy.BlockResult
			err := db.View(RetrieveRawBlockResult(4, &actual))
			require.True(t, fvmerrors.IsUnsupportedVersionFailure(err))
		})

		t.Run("corrupt payload", func(t *testing.T) {
			envelope := rawBlockResultEnvelope{Version: legacy.VersionM6, Payload: []byte{0xc1, 0x00}}
			require.NoError(t, db.Update(insert(makePrefix(codeRawBlockResult, rollup.L1BatchNumber(5)), &envelope)))

			var actual legacy.BlockResult
			err := db.View(RetrieveRawBlockResult(5, &actual))
			require.True(t, fvmerrors.IsEncodingFailure(err))
		})

		t.Run("remove", func(t *testing.T) {
			require.NoError(t, db.Update(RemoveRawBlockResult(1)))
			require.ErrorIs(t, db.Update(RemoveRawBlockResult(1)), storage.ErrNotFound)
			require.NoError(t, db.Update(SkipNonExist(RemoveRawBlockResult(1))))
		})
	})
}

func TestLookupRawBatchNumbers(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		stored := []rollup.L1BatchNumber{1, 2, 5, 255, 256, 70000}
		for _, batch := range stored {
			require.NoError(t, db.Update(InsertRawBlockResult(batch, unittest.V3BlockResultFixture())))
		}
		// sealed batches share no key space with raw results
		sealed := unittest.FinishedL1BatchFixture()
		require.NoError(t, db.Update(UpsertFinishedL1Batch(3, &sealed)))

		var batches []rollup.L1BatchNumber
		require.NoError(t, db.View(LookupRawBatchNumbers(0, 100000, &batches)))
		assert.Equal(t, stored, batches)

		require.NoError(t, db.View(LookupRawBatchNumbers(2, 256, &batches)))
		assert.Equal(t, []rollup.L1BatchNumber{2, 5, 255, 256}, batches)

		require.NoError(t, db.View(LookupRawBatchNumbers(6, 254, &batches)))
		assert.Empty(t, batches)

		require.NoError(t, db.View(LookupRawBatchNumbers(10, 1, &batches)))
		assert.Empty(t, batches)
	})
}
