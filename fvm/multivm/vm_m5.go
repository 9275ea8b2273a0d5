package multivm

import (
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
)

// vm_m5 predates the computational gas metric. Transaction level results
// report zero for it; the block tip reports the full gas used instead.

func vmM5FullResult(raw legacy.V1ExecutionResult) fullResult {
	return fullResult{
		events:             raw.Events,
		storageLogQueries:  raw.StorageLogQueries,
		usedContractHashes: raw.UsedContractHashes,
		l2ToL1Logs:         raw.L2ToL1Logs,
		returnData:         raw.ReturnData,
		gasUsed:            raw.GasUsed,
		// not measured by vm_m5, the policy derives it
		computationalGasUsed: 0,
		contractsUsed:        raw.ContractsUsed,
		revertReason:         fullResultDescriptor(raw.RevertReason),
		totalLogQueries:      raw.TotalLogQueries,
		cyclesUsed:           raw.CyclesUsed,
	}
}

func vmM5BlockTipResult(raw legacy.V1PartialExecutionResult) blockTipResult {
	return blockTipResult{
		logs:          raw.Logs,
		revertReason:  raw.RevertReason,
		contractsUsed: raw.ContractsUsed,
		cyclesUsed:    raw.CyclesUsed,
	}
}

func vmM5ToResultAndLogs(raw legacy.V1BlockResult) (execution.ResultAndLogs, error) {
	return toResultAndLogs(legacy.VersionM5, vmM5FullResult(raw.FullResult))
}

func vmM5ToFinishedL1Batch(raw legacy.V1BlockResult) (execution.FinishedL1Batch, error) {
	return toFinishedL1Batch(
		legacy.VersionM5,
		vmM5FullResult(raw.FullResult),
		vmM5BlockTipResult(raw.BlockTipResult),
	)
}
