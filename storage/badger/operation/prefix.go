package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/rollup-vm/multivm/model/rollup"
)

const (
	// codes for entities
	codeRawBlockResult  = 10
	codeFinishedL1Batch = 11
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case rollup.L1BatchNumber:
		return b(uint32(i))
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}

// batchNumberFromKey parses the batch number of a key built with
// makePrefix(code, batch).
func batchNumberFromKey(key []byte) (rollup.L1BatchNumber, error) {
	if len(key) != 5 {
		return 0, fmt.Errorf("invalid batch key length %d", len(key))
	}
	return rollup.L1BatchNumber(binary.BigEndian.Uint32(key[1:])), nil
}
