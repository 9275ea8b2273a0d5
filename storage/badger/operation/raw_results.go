package operation

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/vmihailenco/msgpack"

	fvmerrors "github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/rollup"
)

// rawBlockResultEnvelope tags the encoded concrete shape of a raw result with
// the version that produced it.
type rawBlockResultEnvelope struct {
	Version legacy.Version
	Payload []byte
}

// InsertRawBlockResult stores the raw result of a batch.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if a result for the batch is already stored
func InsertRawBlockResult(batch rollup.L1BatchNumber, raw legacy.BlockResult) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		if legacy.IsNil(raw) {
			return fvmerrors.NewUnsupportedVersionFailure("<nil>")
		}
		payload, err := msgpack.Marshal(raw)
		if err != nil {
			return fvmerrors.NewEncodingFailuref(err, "could not encode raw result of batch %d", batch)
		}
		envelope := rawBlockResultEnvelope{
			Version: raw.Version(),
			Payload: payload,
		}
		return insert(makePrefix(codeRawBlockResult, batch), &envelope)(tx)
	}
}

// RetrieveRawBlockResult loads the raw result of a batch in value form.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no result for the batch is stored
func RetrieveRawBlockResult(batch rollup.L1BatchNumber, raw *legacy.BlockResult) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var envelope rawBlockResultEnvelope
		err := retrieve(makePrefix(codeRawBlockResult, batch), &envelope)(tx)
		if err != nil {
			return err
		}

		decoded, err := legacy.Decode(envelope.Version, func(v interface{}) error {
			return msgpack.Unmarshal(envelope.Payload, v)
		})
		if err != nil {
			if fvmerrors.IsUnsupportedVersionFailure(err) {
				return fmt.Errorf("could not decode raw result of batch %d: %w", batch, err)
			}
			return fvmerrors.NewEncodingFailuref(err, "could not decode raw result of batch %d", batch)
		}

		*raw = decoded
		return nil
	}
}

// RemoveRawBlockResult removes the raw result of a batch.
func RemoveRawBlockResult(batch rollup.L1BatchNumber) func(*badger.Txn) error {
	return remove(makePrefix(codeRawBlockResult, batch))
}

// LookupRawBatchNumbers collects the numbers of all stored raw results within
// the inclusive range [from, to], in ascending order.
func LookupRawBatchNumbers(from, to rollup.L1BatchNumber, batches *[]rollup.L1BatchNumber) func(*badger.Txn) error {
	*batches = make([]rollup.L1BatchNumber, 0)
	start := makePrefix(codeRawBlockResult, from)
	end := makePrefix(codeRawBlockResult, to)

	return iterate(start, end, func() (checkFunc, createFunc, handleFunc) {
		var batch rollup.L1BatchNumber
		check := func(key []byte) (bool, error) {
			number, err := batchNumberFromKey(key)
			if err != nil {
				return false, err
			}
			batch = number
			return true, nil
		}
		handle := func() error {
			*batches = append(*batches, batch)
			return nil
		}
		return check, nil, handle
	})
}
