package multivm

import (
	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
)

var haltCodes = map[legacy.TxRevertKind]execution.HaltCode{
	legacy.TxRevertValidationFailed:              execution.HaltValidationFailed,
	legacy.TxRevertPaymasterValidationFailed:     execution.HaltPaymasterValidationFailed,
	legacy.TxRevertPrePaymasterPreparationFailed: execution.HaltPrePaymasterPreparationFailed,
	legacy.TxRevertFailedToChargeFee:             execution.HaltFailedToChargeFee,
	legacy.TxRevertFromIsNotAnAccount:            execution.HaltFromIsNotAnAccount,
	legacy.TxRevertInnerTxError:                  execution.HaltInnerTxError,
	legacy.TxRevertUnknown:                       execution.HaltUnknown,
	legacy.TxRevertUnexpectedVMBehavior:          execution.HaltUnexpectedVMBehavior,
	legacy.TxRevertBootloaderOutOfGas:            execution.HaltBootloaderOutOfGas,
	legacy.TxRevertTooBigGasLimit:                execution.HaltTooBigGasLimit,
	legacy.TxRevertNotEnoughGasProvided:          execution.HaltNotEnoughGasProvided,
	legacy.TxRevertMissingInvocationLimitReached: execution.HaltMissingInvocationLimitReached,
}

// NewOutcome classifies the failure descriptor of a raw result and attaches
// the return data in the same step.
//
// The version must be supported. A nil descriptor yields Success carrying a copy of returnData. EthCall and
// TxReverted descriptors yield Revert, every other kind yields Halt; in both
// cases returnData is dropped. A descriptor the version could never have
// produced is a malformed input and returns a failure.
func NewOutcome(
	version legacy.Version,
	descriptor *legacy.TxRevertReason,
	returnData []byte,
) (execution.Outcome, error) {
	policy, err := PolicyFor(version)
	if err != nil {
		return execution.Outcome{}, err
	}
	if descriptor == nil {
		return execution.NewSuccess(returnData), nil
	}
	if !policy.SupportsRevertKind(descriptor.Kind) {
		return execution.Outcome{}, errors.NewMalformedFailureDescriptorFailuref(
			version,
			"descriptor kind %d was never produced by this version",
			descriptor.Kind)
	}

	switch descriptor.Kind {
	case legacy.TxRevertEthCall, legacy.TxRevertTxReverted:
		reason, err := convertRevertReason(version, descriptor.Reason)
		if err != nil {
			return execution.Outcome{}, err
		}
		return execution.NewRevert(reason), nil
	}

	code, ok := haltCodes[descriptor.Kind]
	if !ok {
		return execution.Outcome{}, errors.NewMalformedFailureDescriptorFailuref(
			version,
			"descriptor kind %d has no halt mapping",
			descriptor.Kind)
	}

	halt := execution.Halt{Code: code}
	switch {
	case code.RequiresReason():
		reason, err := convertRevertReason(version, descriptor.Reason)
		if err != nil {
			return execution.Outcome{}, err
		}
		halt.Reason = &reason
	case code == execution.HaltUnexpectedVMBehavior:
		halt.Message = descriptor.Message
	}
	return execution.NewHalt(halt), nil
}

func convertRevertReason(version legacy.Version, reason *legacy.VmRevertReason) (execution.RevertReason, error) {
	if reason == nil {
		return execution.RevertReason{}, errors.NewMalformedFailureDescriptorFailuref(
			version,
			"revert payload is missing")
	}

	switch reason.Kind {
	case legacy.VmRevertGeneral:
		return execution.NewGeneralRevertReason(reason.Msg, reason.Data), nil
	case legacy.VmRevertInnerTxError:
		return execution.RevertReason{Kind: execution.RevertInnerTxError}, nil
	case legacy.VmRevertVMError:
		return execution.RevertReason{Kind: execution.RevertVMError}, nil
	case legacy.VmRevertUnknown:
		return execution.NewUnknownRevertReason(reason.FunctionSelector, reason.Data), nil
	default:
		return execution.RevertReason{}, errors.NewMalformedFailureDescriptorFailuref(
			version,
			"unknown revert payload kind %d",
			reason.Kind)
	}
}

// fullResultDescriptor unwraps the descriptor of a full execution result.
func fullResultDescriptor(parsed *legacy.VmRevertReasonParsingResult) *legacy.TxRevertReason {
	if parsed == nil {
		return nil
	}
	descriptor := parsed.RevertReason
	return &descriptor
}
