package multivm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
)

// fullResult is the version independent view of a raw full batch result.
// Every version's converter fills every field and states, field by field, how
// values missing from its raw shape are defaulted.
type fullResult struct {
	events               []rollup.Event
	storageLogQueries    []rollup.StorageLogQuery
	usedContractHashes   []common.Hash
	l2ToL1Logs           []rollup.L2ToL1Log
	returnData           []byte
	gasUsed              uint32
	computationalGasUsed uint32
	contractsUsed        uint64
	revertReason         *legacy.TxRevertReason
	totalLogQueries      uint64
	cyclesUsed           uint32
}

// blockTipResult is the version independent view of a raw block tip result.
type blockTipResult struct {
	logs          legacy.VmExecutionLogs
	revertReason  *legacy.TxRevertReason
	contractsUsed uint64
	cyclesUsed    uint32
}

// toResultAndLogs builds the canonical result of the full execution.
func toResultAndLogs(version legacy.Version, full fullResult) (execution.ResultAndLogs, error) {
	policy := mustPolicy(version)

	outcome, err := NewOutcome(version, full.revertReason, full.returnData)
	if err != nil {
		return execution.ResultAndLogs{}, fmt.Errorf("could not classify full result: %w", err)
	}

	return execution.ResultAndLogs{
		Outcome: outcome,
		Logs: execution.Logs{
			Events:               rollup.CopyEvents(full.events),
			L2ToL1Logs:           rollup.CopyL2ToL1Logs(full.l2ToL1Logs),
			StorageLogs:          rollup.CopyStorageLogQueries(full.storageLogQueries),
			TotalLogQueriesCount: full.totalLogQueries,
		},
		Statistics: execution.Statistics{
			ContractsUsed:        full.contractsUsed,
			CyclesUsed:           full.cyclesUsed,
			TotalLogQueries:      full.totalLogQueries,
			ComputationalGasUsed: policy.TxComputationalGas.apply(full.gasUsed, full.computationalGasUsed),
			GasUsed:              full.gasUsed,
		},
		Refunds: policy.refunds(),
	}, nil
}

// toFinishedL1Batch builds the canonical sealed batch. The block tip outcome
// comes from the block tip descriptor, its Success output from the full
// result's return data.
func toFinishedL1Batch(version legacy.Version, full fullResult, tip blockTipResult) (execution.FinishedL1Batch, error) {
	policy := mustPolicy(version)

	outcome, err := NewOutcome(version, tip.revertReason, full.returnData)
	if err != nil {
		return execution.FinishedL1Batch{}, fmt.Errorf("could not classify block tip result: %w", err)
	}

	return execution.FinishedL1Batch{
		BlockTipExecutionResult: execution.ResultAndLogs{
			Outcome: outcome,
			Logs: execution.Logs{
				Events:               rollup.CopyEvents(tip.logs.Events),
				L2ToL1Logs:           rollup.CopyL2ToL1Logs(tip.logs.L2ToL1Logs),
				StorageLogs:          rollup.CopyStorageLogQueries(tip.logs.StorageLogs),
				TotalLogQueriesCount: tip.logs.TotalLogQueriesCount,
			},
			Statistics: execution.Statistics{
				ContractsUsed:        tip.contractsUsed,
				CyclesUsed:           tip.cyclesUsed,
				TotalLogQueries:      tip.logs.TotalLogQueriesCount,
				ComputationalGasUsed: policy.BatchTipComputationalGas.apply(full.gasUsed, full.computationalGasUsed),
				GasUsed:              full.gasUsed,
			},
			Refunds: policy.refunds(),
		},
		FinalExecutionState: execution.CurrentExecutionState{
			Events:             rollup.CopyEvents(full.events),
			StorageLogQueries:  rollup.CopyStorageLogQueries(full.storageLogQueries),
			UsedContractHashes: rollup.CopyHashes(full.usedContractHashes),
			L2ToL1Logs:         rollup.CopyL2ToL1Logs(full.l2ToL1Logs),
			TotalLogQueries:    full.totalLogQueries,
			CyclesUsed:         full.cyclesUsed,
			StorageRefunds:     policy.storageRefunds(),
		},
		FinalBootloaderMemory: policy.bootloaderMemory(),
	}, nil
}
