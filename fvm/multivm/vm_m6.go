package multivm

import (
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
)

func vmM6FullResult(raw legacy.V2ExecutionResult) fullResult {
	return fullResult{
		events:               raw.Events,
		storageLogQueries:    raw.StorageLogQueries,
		usedContractHashes:   raw.UsedContractHashes,
		l2ToL1Logs:           raw.L2ToL1Logs,
		returnData:           raw.ReturnData,
		gasUsed:              raw.GasUsed,
		computationalGasUsed: raw.ComputationalGasUsed,
		contractsUsed:        raw.ContractsUsed,
		revertReason:         fullResultDescriptor(raw.RevertReason),
		totalLogQueries:      raw.TotalLogQueries,
		cyclesUsed:           raw.CyclesUsed,
	}
}

func vmM6BlockTipResult(raw legacy.V2PartialExecutionResult) blockTipResult {
	return blockTipResult{
		logs:          raw.Logs,
		revertReason:  raw.RevertReason,
		contractsUsed: raw.ContractsUsed,
		cyclesUsed:    raw.CyclesUsed,
	}
}

func vmM6ToResultAndLogs(raw legacy.V2BlockResult) (execution.ResultAndLogs, error) {
	return toResultAndLogs(legacy.VersionM6, vmM6FullResult(raw.FullResult))
}

func vmM6ToFinishedL1Batch(raw legacy.V2BlockResult) (execution.FinishedL1Batch, error) {
	return toFinishedL1Batch(
		legacy.VersionM6,
		vmM6FullResult(raw.FullResult),
		vmM6BlockTipResult(raw.BlockTipResult),
	)
}
