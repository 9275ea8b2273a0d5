package rollup

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// L1BatchNumber is the sequence number of a batch committed to L1.
type L1BatchNumber uint32

// EventLocation identifies the transaction an event was emitted from.
type EventLocation struct {
	L1BatchNumber L1BatchNumber
	TxIndex       uint32
}

// Event is a single event emitted by a contract during execution.
type Event struct {
	Location      EventLocation
	Address       common.Address
	IndexedTopics []common.Hash
	Value         []byte
}

func (e Event) String() string {
	return fmt.Sprintf("event(batch=%d, tx=%d, address=%s, topics=%d)",
		e.Location.L1BatchNumber, e.Location.TxIndex, e.Address.Hex(), len(e.IndexedTopics))
}

// Copy returns a deep copy of the event.
func (e Event) Copy() Event {
	cp := e
	if e.IndexedTopics != nil {
		cp.IndexedTopics = make([]common.Hash, len(e.IndexedTopics))
		copy(cp.IndexedTopics, e.IndexedTopics)
	}
	cp.Value = CopyBytes(e.Value)
	return cp
}

// CopyEvents deep copies a list of events. A nil list stays nil.
func CopyEvents(events []Event) []Event {
	if events == nil {
		return nil
	}
	out := make([]Event, len(events))
	for i, event := range events {
		out[i] = event.Copy()
	}
	return out
}

// CopyBytes returns a copy of b. A nil slice stays nil.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// CopyHashes returns a copy of the given hash list. A nil list stays nil.
func CopyHashes(hashes []common.Hash) []common.Hash {
	if hashes == nil {
		return nil
	}
	out := make([]common.Hash, len(hashes))
	copy(out, hashes)
	return out
}
