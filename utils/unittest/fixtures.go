package unittest

import (
	"math/rand"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
)

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

func HashFixture() common.Hash {
	return common.BytesToHash(RandomBytes(common.HashLength))
}

func HashesFixture(n int) []common.Hash {
	hashes := make([]common.Hash, 0, n)
	for i := 0; i < n; i++ {
		hashes = append(hashes, HashFixture())
	}
	return hashes
}

func AddressFixture() common.Address {
	return common.BytesToAddress(RandomBytes(common.AddressLength))
}

func EventFixture(batch rollup.L1BatchNumber, txIndex uint32) rollup.Event {
	return rollup.Event{
		Location: rollup.EventLocation{
			L1BatchNumber: batch,
			TxIndex:       txIndex,
		},
		Address:       AddressFixture(),
		IndexedTopics: HashesFixture(1 + rand.Intn(3)),
		Value:         RandomBytes(32),
	}
}

func EventsFixture(batch rollup.L1BatchNumber, n int) []rollup.Event {
	events := make([]rollup.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, EventFixture(batch, uint32(i)))
	}
	return events
}

func L2ToL1LogFixture(txNumber uint16) rollup.L2ToL1Log {
	return rollup.L2ToL1Log{
		ShardID:         0,
		IsService:       rand.Intn(2) == 0,
		TxNumberInBlock: txNumber,
		Sender:          AddressFixture(),
		Key:             HashFixture(),
		Value:           HashFixture(),
	}
}

func L2ToL1LogsFixture(n int) []rollup.L2ToL1Log {
	logs := make([]rollup.L2ToL1Log, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, L2ToL1LogFixture(uint16(i)))
	}
	return logs
}

func StorageLogQueryFixture(timestamp uint32) rollup.StorageLogQuery {
	write := rand.Intn(2) == 0
	logType := rollup.StorageLogQueryRead
	if write {
		logType = rollup.StorageLogQueryInitialWrite
	}
	return rollup.StorageLogQuery{
		LogQuery: rollup.LogQuery{
			Timestamp:       timestamp,
			TxNumberInBlock: uint16(rand.Intn(100)),
			Address:         AddressFixture(),
			Key:             *uint256.NewInt(rand.Uint64()),
			ReadValue:       *uint256.NewInt(rand.Uint64()),
			WrittenValue:    *uint256.NewInt(rand.Uint64()),
			RWFlag:          write,
		},
		LogType: logType,
	}
}

func StorageLogQueriesFixture(n int) []rollup.StorageLogQuery {
	queries := make([]rollup.StorageLogQuery, 0, n)
	for i := 0; i < n; i++ {
		queries = append(queries, StorageLogQueryFixture(uint32(i)))
	}
	return queries
}

func VmRevertReasonFixture() *legacy.VmRevertReason {
	return &legacy.VmRevertReason{
		Kind: legacy.VmRevertGeneral,
		Msg:  "insufficient balance",
		Data: RandomBytes(68),
	}
}

// TxRevertReasonFixture returns a well formed failure descriptor of the given
// kind. Every kind gets a revert payload, kinds that do not carry one ignore it.
func TxRevertReasonFixture(kind legacy.TxRevertKind) *legacy.TxRevertReason {
	descriptor := &legacy.TxRevertReason{
		Kind:   kind,
		Reason: VmRevertReasonFixture(),
	}
	if kind == legacy.TxRevertUnexpectedVMBehavior {
		descriptor.Message = "bootloader heap overflow"
	}
	return descriptor
}

func VmExecutionLogsFixture(events int, messages int) legacy.VmExecutionLogs {
	storageLogs := StorageLogQueriesFixture(2)
	return legacy.VmExecutionLogs{
		StorageLogs:          storageLogs,
		Events:               EventsFixture(1, events),
		L2ToL1Logs:           L2ToL1LogsFixture(messages),
		TotalLogQueriesCount: uint64(len(storageLogs) + events + messages),
	}
}

func V1BlockResultFixture(opts ...func(*legacy.V1BlockResult)) legacy.V1BlockResult {
	storage := StorageLogQueriesFixture(4)
	events := EventsFixture(1, 3)
	messages := L2ToL1LogsFixture(1)
	result := legacy.V1BlockResult{
		FullResult: legacy.V1ExecutionResult{
			Events:             events,
			StorageLogQueries:  storage,
			UsedContractHashes: HashesFixture(2),
			L2ToL1Logs:         messages,
			ReturnData:         RandomBytes(32),
			GasUsed:            uint32(50_000 + rand.Intn(50_000)),
			ContractsUsed:      uint64(1 + rand.Intn(10)),
			TotalLogQueries:    uint64(len(storage) + len(events) + len(messages)),
			CyclesUsed:         uint32(1 + rand.Intn(10_000)),
		},
		BlockTipResult: legacy.V1PartialExecutionResult{
			Logs:          VmExecutionLogsFixture(1, 0),
			ContractsUsed: uint64(1 + rand.Intn(5)),
			CyclesUsed:    uint32(1 + rand.Intn(1_000)),
		},
	}
	for _, apply := range opts {
		apply(&result)
	}
	return result
}

func V2BlockResultFixture(opts ...func(*legacy.V2BlockResult)) legacy.V2BlockResult {
	storage := StorageLogQueriesFixture(4)
	events := EventsFixture(2, 3)
	messages := L2ToL1LogsFixture(2)
	gasUsed := uint32(50_000 + rand.Intn(50_000))
	result := legacy.V2BlockResult{
		FullResult: legacy.V2ExecutionResult{
			Events:               events,
			StorageLogQueries:    storage,
			UsedContractHashes:   HashesFixture(2),
			L2ToL1Logs:           messages,
			ReturnData:           RandomBytes(32),
			GasUsed:              gasUsed,
			ComputationalGasUsed: gasUsed / 2,
			ContractsUsed:        uint64(1 + rand.Intn(10)),
			TotalLogQueries:      uint64(len(storage) + len(events) + len(messages)),
			CyclesUsed:           uint32(1 + rand.Intn(10_000)),
		},
		BlockTipResult: legacy.V2PartialExecutionResult{
			Logs:          VmExecutionLogsFixture(1, 1),
			ContractsUsed: uint64(1 + rand.Intn(5)),
			CyclesUsed:    uint32(1 + rand.Intn(1_000)),
		},
	}
	for _, apply := range opts {
		apply(&result)
	}
	return result
}

func V3BlockResultFixture(opts ...func(*legacy.V3BlockResult)) legacy.V3BlockResult {
	storage := StorageLogQueriesFixture(5)
	events := EventsFixture(3, 2)
	messages := L2ToL1LogsFixture(1)
	gasUsed := uint32(50_000 + rand.Intn(50_000))
	result := legacy.V3BlockResult{
		FullResult: legacy.V3ExecutionResult{
			Events:               events,
			StorageLogQueries:    storage,
			UsedContractHashes:   HashesFixture(3),
			L2ToL1Logs:           messages,
			ReturnData:           RandomBytes(32),
			GasUsed:              gasUsed,
			ComputationalGasUsed: gasUsed / 3,
			ContractsUsed:        uint64(1 + rand.Intn(10)),
			TotalLogQueries:      uint64(len(storage) + len(events) + len(messages)),
			CyclesUsed:           uint32(1 + rand.Intn(10_000)),
		},
		BlockTipResult: legacy.V3PartialExecutionResult{
			Logs:          VmExecutionLogsFixture(2, 1),
			ContractsUsed: uint64(1 + rand.Intn(5)),
			CyclesUsed:    uint32(1 + rand.Intn(1_000)),
		},
	}
	for _, apply := range opts {
		apply(&result)
	}
	return result
}

// BlockResultFixture returns a raw block result of the given version.
func BlockResultFixture(version legacy.Version) legacy.BlockResult {
	switch version {
	case legacy.VersionM5:
		return V1BlockResultFixture()
	case legacy.VersionM6:
		return V2BlockResultFixture()
	case legacy.Version1_3_2:
		return V3BlockResultFixture()
	default:
		panic("unsupported vm version")
	}
}

func ResultAndLogsFixture() execution.ResultAndLogs {
	events := EventsFixture(1, 2)
	storage := StorageLogQueriesFixture(3)
	total := uint64(len(events) + len(storage))
	gasUsed := uint32(10_000 + rand.Intn(10_000))
	return execution.ResultAndLogs{
		Outcome: execution.NewSuccess(RandomBytes(32)),
		Logs: execution.Logs{
			Events:               events,
			L2ToL1Logs:           []rollup.L2ToL1Log{},
			StorageLogs:          storage,
			TotalLogQueriesCount: total,
		},
		Statistics: execution.Statistics{
			ContractsUsed:        uint64(1 + rand.Intn(5)),
			CyclesUsed:           uint32(1 + rand.Intn(1_000)),
			TotalLogQueries:      total,
			ComputationalGasUsed: gasUsed / 2,
			GasUsed:              gasUsed,
		},
	}
}

func FinishedL1BatchFixture() execution.FinishedL1Batch {
	return execution.FinishedL1Batch{
		BlockTipExecutionResult: ResultAndLogsFixture(),
		FinalExecutionState: execution.CurrentExecutionState{
			Events:             EventsFixture(1, 4),
			StorageLogQueries:  StorageLogQueriesFixture(6),
			UsedContractHashes: HashesFixture(2),
			L2ToL1Logs:         L2ToL1LogsFixture(1),
			TotalLogQueries:    11,
			CyclesUsed:         uint32(1 + rand.Intn(10_000)),
			StorageRefunds:     []rollup.StorageRefund{},
		},
	}
}
