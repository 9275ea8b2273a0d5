package rollup

import (
	"github.com/ethereum/go-ethereum/common"
)

// L2ToL1Log is an outbound message from L2 to L1, emitted during execution and
// later published as part of the batch commitment.
type L2ToL1Log struct {
	ShardID         uint8
	IsService       bool
	TxNumberInBlock uint16
	Sender          common.Address
	Key             common.Hash
	Value           common.Hash
}

// CopyL2ToL1Logs copies a list of L2 to L1 logs. A nil list stays nil.
func CopyL2ToL1Logs(logs []L2ToL1Log) []L2ToL1Log {
	if logs == nil {
		return nil
	}
	out := make([]L2ToL1Log, len(logs))
	copy(out, logs)
	return out
}
