package legacy

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-vm/multivm/model/rollup"
)

// BlockResult is the raw result of sealing a batch, as produced by one of the
// historical VMs. The set of implementations is closed: only the result types
// of this package satisfy it.
type BlockResult interface {
	// Version returns the VM version that produced the result.
	Version() Version
	isBlockResult()
}

var (
	_ BlockResult = V1BlockResult{}
	_ BlockResult = V2BlockResult{}
	_ BlockResult = V3BlockResult{}
)

// VmExecutionLogs are the logs of a partial execution, shared by all versions.
type VmExecutionLogs struct {
	StorageLogs          []rollup.StorageLogQuery
	Events               []rollup.Event
	L2ToL1Logs           []rollup.L2ToL1Log
	TotalLogQueriesCount uint64
}

// V1ExecutionResult is the full batch result of vm_m5.
type V1ExecutionResult struct {
	Events             []rollup.Event
	StorageLogQueries  []rollup.StorageLogQuery
	UsedContractHashes []common.Hash
	L2ToL1Logs         []rollup.L2ToL1Log
	ReturnData         []byte
	GasUsed            uint32
	ContractsUsed      uint64
	RevertReason       *VmRevertReasonParsingResult
	TotalLogQueries    uint64
	CyclesUsed         uint32
}

// V1PartialExecutionResult is the block tip result of vm_m5.
type V1PartialExecutionResult struct {
	Logs          VmExecutionLogs
	RevertReason  *TxRevertReason
	ContractsUsed uint64
	CyclesUsed    uint32
}

// V1BlockResult is the raw result of sealing a batch with vm_m5.
type V1BlockResult struct {
	FullResult     V1ExecutionResult
	BlockTipResult V1PartialExecutionResult
}

func (V1BlockResult) Version() Version { return VersionM5 }
func (V1BlockResult) isBlockResult()   {}

// V2ExecutionResult is the full batch result of vm_m6. It is the first
// version to report computational gas.
type V2ExecutionResult struct {
	Events               []rollup.Event
	StorageLogQueries    []rollup.StorageLogQuery
	UsedContractHashes   []common.Hash
	L2ToL1Logs           []rollup.L2ToL1Log
	ReturnData           []byte
	GasUsed              uint32
	ComputationalGasUsed uint32
	ContractsUsed        uint64
	RevertReason         *VmRevertReasonParsingResult
	TotalLogQueries      uint64
	CyclesUsed           uint32
}

// V2PartialExecutionResult is the block tip result of vm_m6.
type V2PartialExecutionResult struct {
	Logs          VmExecutionLogs
	RevertReason  *TxRevertReason
	ContractsUsed uint64
	CyclesUsed    uint32
}

// V2BlockResult is the raw result of sealing a batch with vm_m6.
type V2BlockResult struct {
	FullResult     V2ExecutionResult
	BlockTipResult V2PartialExecutionResult
}

func (V2BlockResult) Version() Version { return VersionM6 }
func (V2BlockResult) isBlockResult()   {}

// V3ExecutionResult is the full batch result of vm_1_3_2.
type V3ExecutionResult struct {
	Events               []rollup.Event
	StorageLogQueries    []rollup.StorageLogQuery
	UsedContractHashes   []common.Hash
	L2ToL1Logs           []rollup.L2ToL1Log
	ReturnData           []byte
	GasUsed              uint32
	ComputationalGasUsed uint32
	ContractsUsed        uint64
	RevertReason         *VmRevertReasonParsingResult
	TotalLogQueries      uint64
	CyclesUsed           uint32
}

// V3PartialExecutionResult is the block tip result of vm_1_3_2.
type V3PartialExecutionResult struct {
	Logs          VmExecutionLogs
	RevertReason  *TxRevertReason
	ContractsUsed uint64
	CyclesUsed    uint32
}

// V3BlockResult is the raw result of sealing a batch with vm_1_3_2.
type V3BlockResult struct {
	FullResult     V3ExecutionResult
	BlockTipResult V3PartialExecutionResult
}

func (V3BlockResult) Version() Version { return Version1_3_2 }
func (V3BlockResult) isBlockResult()   {}

// IsNil returns true for a nil result and for typed nil pointers to the
// concrete shapes.
func IsNil(raw BlockResult) bool {
	switch r := raw.(type) {
	case nil:
		return true
	case *V1BlockResult:
		return r == nil
	case *V2BlockResult:
		return r == nil
	case *V3BlockResult:
		return r == nil
	default:
		return false
	}
}
