package multivm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rollup-vm/multivm/fvm/multivm"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/utils/unittest"
)

var haltKinds = []legacy.TxRevertKind{
	legacy.TxRevertValidationFailed,
	legacy.TxRevertPaymasterValidationFailed,
	legacy.TxRevertPrePaymasterPreparationFailed,
	legacy.TxRevertFailedToChargeFee,
	legacy.TxRevertFromIsNotAnAccount,
	legacy.TxRevertInnerTxError,
	legacy.TxRevertUnknown,
	legacy.TxRevertUnexpectedVMBehavior,
	legacy.TxRevertBootloaderOutOfGas,
	legacy.TxRevertTooBigGasLimit,
	legacy.TxRevertNotEnoughGasProvided,
}

// descriptorGen draws a failure descriptor the given version could have
// produced, or nil for a successful execution.
func descriptorGen(version legacy.Version) *rapid.Generator[*legacy.TxRevertReason] {
	kinds := append([]legacy.TxRevertKind{legacy.TxRevertEthCall, legacy.TxRevertTxReverted}, haltKinds...)
	if version != legacy.VersionM5 {
		kinds = append(kinds, legacy.TxRevertMissingInvocationLimitReached)
	}

	return rapid.Custom(func(t *rapid.T) *legacy.TxRevertReason {
		if !rapid.Bool().Draw(t, "failed") {
			return nil
		}
		return &legacy.TxRevertReason{
			Kind: rapid.SampledFrom(kinds).Draw(t, "kind"),
			Reason: &legacy.VmRevertReason{
				Kind: rapid.SampledFrom([]legacy.VmRevertKind{
					legacy.VmRevertGeneral,
					legacy.VmRevertInnerTxError,
					legacy.VmRevertVMError,
					legacy.VmRevertUnknown,
				}).Draw(t, "reason_kind"),
				Msg:              rapid.String().Draw(t, "msg"),
				Data:             rapid.SliceOf(rapid.Byte()).Draw(t, "data"),
				FunctionSelector: rapid.SliceOfN(rapid.Byte(), 4, 4).Draw(t, "selector"),
			},
			Message: rapid.String().Draw(t, "message"),
		}
	})
}

type drawnResult struct {
	events          []rollup.Event
	storage         []rollup.StorageLogQuery
	messages        []rollup.L2ToL1Log
	hashes          int
	returnData      []byte
	gasUsed         uint32
	computational   uint32
	contractsUsed   uint64
	cyclesUsed      uint32
	fullDescriptor  *legacy.TxRevertReason
	tipDescriptor   *legacy.TxRevertReason
	tipLogs         legacy.VmExecutionLogs
	tipContracts    uint64
	tipCycles       uint32
	totalLogQueries uint64
}

func drawResult(t *rapid.T, version legacy.Version) drawnResult {
	events := unittest.EventsFixture(1, rapid.IntRange(0, 4).Draw(t, "events"))
	storage := unittest.StorageLogQueriesFixture(rapid.IntRange(0, 4).Draw(t, "storage"))
	messages := unittest.L2ToL1LogsFixture(rapid.IntRange(0, 2).Draw(t, "messages"))
	gasUsed := rapid.Uint32Range(1, 1<<24).Draw(t, "gas_used")

	return drawnResult{
		events:          events,
		storage:         storage,
		messages:        messages,
		hashes:          rapid.IntRange(0, 3).Draw(t, "hashes"),
		returnData:      rapid.SliceOf(rapid.Byte()).Draw(t, "return_data"),
		gasUsed:         gasUsed,
		computational:   rapid.Uint32Range(0, gasUsed).Draw(t, "computational_gas_used"),
		contractsUsed:   rapid.Uint64Range(0, 1000).Draw(t, "contracts_used"),
		cyclesUsed:      rapid.Uint32().Draw(t, "cycles_used"),
		fullDescriptor:  descriptorGen(version).Draw(t, "full_descriptor"),
		tipDescriptor:   descriptorGen(version).Draw(t, "tip_descriptor"),
		tipLogs:         unittest.VmExecutionLogsFixture(rapid.IntRange(0, 3).Draw(t, "tip_events"), rapid.IntRange(0, 2).Draw(t, "tip_messages")),
		tipContracts:    rapid.Uint64Range(0, 100).Draw(t, "tip_contracts_used"),
		tipCycles:       rapid.Uint32().Draw(t, "tip_cycles_used"),
		totalLogQueries: uint64(len(events) + len(storage) + len(messages)),
	}
}

func parsingResult(descriptor *legacy.TxRevertReason) *legacy.VmRevertReasonParsingResult {
	if descriptor == nil {
		return nil
	}
	return &legacy.VmRevertReasonParsingResult{RevertReason: *descriptor}
}

func (d drawnResult) build(version legacy.Version) legacy.BlockResult {
	hashes := unittest.HashesFixture(d.hashes)
	switch version {
	case legacy.VersionM5:
		return legacy.V1BlockResult{
			FullResult: legacy.V1ExecutionResult{
				Events: d.events, StorageLogQueries: d.storage, UsedContractHashes: hashes,
				L2ToL1Logs: d.messages, ReturnData: d.returnData, GasUsed: d.gasUsed,
				ContractsUsed: d.contractsUsed, RevertReason: parsingResult(d.fullDescriptor),
				TotalLogQueries: d.totalLogQueries, CyclesUsed: d.cyclesUsed,
			},
			BlockTipResult: legacy.V1PartialExecutionResult{
				Logs: d.tipLogs, RevertReason: d.tipDescriptor,
				ContractsUsed: d.tipContracts, CyclesUsed: d.tipCycles,
			},
		}
	case legacy.VersionM6:
		return legacy.V2BlockResult{
			FullResult: legacy.V2ExecutionResult{
				Events: d.events, StorageLogQueries: d.storage, UsedContractHashes: hashes,
				L2ToL1Logs: d.messages, ReturnData: d.returnData, GasUsed: d.gasUsed,
				ComputationalGasUsed: d.computational, ContractsUsed: d.contractsUsed,
				RevertReason: parsingResult(d.fullDescriptor), TotalLogQueries: d.totalLogQueries,
				CyclesUsed: d.cyclesUsed,
			},
			BlockTipResult: legacy.V2PartialExecutionResult{
				Logs: d.tipLogs, RevertReason: d.tipDescriptor,
				ContractsUsed: d.tipContracts, CyclesUsed: d.tipCycles,
			},
		}
	default:
		return legacy.V3BlockResult{
			FullResult: legacy.V3ExecutionResult{
				Events: d.events, StorageLogQueries: d.storage, UsedContractHashes: hashes,
				L2ToL1Logs: d.messages, ReturnData: d.returnData, GasUsed: d.gasUsed,
				ComputationalGasUsed: d.computational, ContractsUsed: d.contractsUsed,
				RevertReason: parsingResult(d.fullDescriptor), TotalLogQueries: d.totalLogQueries,
				CyclesUsed: d.cyclesUsed,
			},
			BlockTipResult: legacy.V3PartialExecutionResult{
				Logs: d.tipLogs, RevertReason: d.tipDescriptor,
				ContractsUsed: d.tipContracts, CyclesUsed: d.tipCycles,
			},
		}
	}
}

func requireOutcomeCarriesOutput(t require.TestingT, outcome execution.Outcome, descriptor *legacy.TxRevertReason, returnData []byte) {
	if descriptor == nil {
		require.Equal(t, execution.StatusSuccess, outcome.Status)
		require.Equal(t, returnData, outcome.Output)
		return
	}
	require.True(t, outcome.IsFailed())
	require.Nil(t, outcome.Output)
}

func TestConversionProperties(t *testing.T) {
	for _, version := range legacy.AllVersions() {
		version := version
		t.Run(version.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				drawn := drawResult(t, version)
				raw := drawn.build(version)

				result, err := multivm.ToResultAndLogs(raw)
				require.NoError(t, err)
				batch, err := multivm.ToFinishedL1Batch(raw)
				require.NoError(t, err)

				// round trip faithfulness
				require.Equal(t, drawn.events, result.Logs.Events)
				require.Equal(t, drawn.storage, result.Logs.StorageLogs)
				require.Equal(t, drawn.messages, result.Logs.L2ToL1Logs)
				require.Equal(t, drawn.gasUsed, result.Statistics.GasUsed)
				require.Equal(t, drawn.contractsUsed, result.Statistics.ContractsUsed)
				require.Equal(t, drawn.cyclesUsed, result.Statistics.CyclesUsed)
				require.Equal(t, drawn.events, batch.FinalExecutionState.Events)
				require.Equal(t, drawn.storage, batch.FinalExecutionState.StorageLogQueries)
				require.Equal(t, drawn.tipLogs.Events, batch.BlockTipExecutionResult.Logs.Events)

				// log count consistency
				require.Equal(t, result.Logs.TotalLogQueriesCount, result.Statistics.TotalLogQueries)
				tip := batch.BlockTipExecutionResult
				require.Equal(t, tip.Logs.TotalLogQueriesCount, tip.Statistics.TotalLogQueries)

				// success carries the full return data, failures carry none
				requireOutcomeCarriesOutput(t, result.Outcome, drawn.fullDescriptor, drawn.returnData)
				requireOutcomeCarriesOutput(t, tip.Outcome, drawn.tipDescriptor, drawn.returnData)
				require.NoError(t, result.Outcome.Validate())
				require.NoError(t, tip.Outcome.Validate())

				// no refunds were tracked by any historical version
				require.True(t, result.Refunds.IsZero())
				require.True(t, tip.Refunds.IsZero())
				require.NotNil(t, batch.FinalExecutionState.StorageRefunds)
				require.Empty(t, batch.FinalExecutionState.StorageRefunds)

				// nor did any of them expose bootloader memory
				require.Nil(t, batch.FinalBootloaderMemory)

				require.NoError(t, result.Validate())
				require.NoError(t, batch.Validate())
			})
		})
	}
}
