package rollup

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// StorageLogQueryType tells whether a storage access was a read, the first
// write to a slot within the batch, or a subsequent write.
type StorageLogQueryType uint8

const (
	StorageLogQueryRead StorageLogQueryType = iota
	StorageLogQueryInitialWrite
	StorageLogQueryRepeatedWrite
)

func (t StorageLogQueryType) String() string {
	switch t {
	case StorageLogQueryRead:
		return "read"
	case StorageLogQueryInitialWrite:
		return "initial_write"
	case StorageLogQueryRepeatedWrite:
		return "repeated_write"
	default:
		return "unknown"
	}
}

// LogQuery is the raw storage access as recorded by the VM.
type LogQuery struct {
	Timestamp       uint32
	TxNumberInBlock uint16
	AuxByte         uint8
	ShardID         uint8
	Address         common.Address
	Key             uint256.Int
	ReadValue       uint256.Int
	WrittenValue    uint256.Int
	RWFlag          bool
	Rollback        bool
	IsService       bool
}

// StorageLogQuery is a storage access together with its classification.
type StorageLogQuery struct {
	LogQuery LogQuery
	LogType  StorageLogQueryType
}

// IsWrite returns true if the query wrote to storage.
func (q StorageLogQuery) IsWrite() bool {
	return q.LogQuery.RWFlag
}

// CopyStorageLogQueries copies a list of storage log queries. A nil list stays nil.
func CopyStorageLogQueries(queries []StorageLogQuery) []StorageLogQuery {
	if queries == nil {
		return nil
	}
	out := make([]StorageLogQuery, len(queries))
	copy(out, queries)
	return out
}

// StorageRefund is the refund, in pubdata bytes, granted for a single storage
// write. Versions that predate refund tracking never produce one.
type StorageRefund uint32
