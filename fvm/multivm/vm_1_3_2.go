package multivm

import (
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
)

// vm_1_3_2 is the last version whose bootloader memory was part of the public
// API. It is still reported as absent: witnesses are not generated for
// finalized historical batches.

func vm132FullResult(raw legacy.V3ExecutionResult) fullResult {
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

func vm132BlockTipResult(raw legacy.V3PartialExecutionResult) blockTipResult {
	return blockTipResult{
		logs:          raw.Logs,
		revertReason:  raw.RevertReason,
		contractsUsed: raw.ContractsUsed,
		cyclesUsed:    raw.CyclesUsed,
	}
}

func vm132ToResultAndLogs(raw legacy.V3BlockResult) (execution.ResultAndLogs, error) {
	return toResultAndLogs(legacy.Version1_3_2, vm132FullResult(raw.FullResult))
}

func vm132ToFinishedL1Batch(raw legacy.V3BlockResult) (execution.FinishedL1Batch, error) {
	return toFinishedL1Batch(
		legacy.Version1_3_2,
		vm132FullResult(raw.FullResult),
		vm132BlockTipResult(raw.BlockTipResult),
	)
}
