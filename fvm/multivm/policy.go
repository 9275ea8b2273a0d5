package multivm

import (
	"fmt"

	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/model/rollup"
)

// ComputationalGasPolicy selects how the computational gas statistic is
// derived for a version.
type ComputationalGasPolicy uint8

const (
	// ComputationalGasZero reports zero, the VM had no such metric.
	ComputationalGasZero ComputationalGasPolicy = iota + 1
	// ComputationalGasEqualsGasUsed reports the full gas used, the VM did not
	// separate the two.
	ComputationalGasEqualsGasUsed
	// ComputationalGasPassThrough reports the value measured by the VM.
	ComputationalGasPassThrough
)

func (p ComputationalGasPolicy) String() string {
	switch p {
	case ComputationalGasZero:
		return "zero"
	case ComputationalGasEqualsGasUsed:
		return "equals_gas_used"
	case ComputationalGasPassThrough:
		return "pass_through"
	default:
		return fmt.Sprintf("computational_gas_policy(%d)", uint8(p))
	}
}

// apply derives the computational gas from the gas used and the value reported
// by the VM. reported is ignored unless the policy passes it through.
func (p ComputationalGasPolicy) apply(gasUsed uint32, reported uint32) uint32 {
	switch p {
	case ComputationalGasZero:
		return 0
	case ComputationalGasEqualsGasUsed:
		return gasUsed
	default:
		return reported
	}
}

// Policy is the defaulting policy of a single VM version: how each canonical
// field without a raw counterpart is populated.
type Policy struct {
	// TxComputationalGas applies to ResultAndLogs built from the full result.
	TxComputationalGas ComputationalGasPolicy
	// BatchTipComputationalGas applies to the block tip of a FinishedL1Batch.
	BatchTipComputationalGas ComputationalGasPolicy
	TracksRefunds            bool
	TracksStorageRefunds     bool
	ExposesBootloaderMemory  bool
	// RevertKinds is the set of failure descriptor kinds the VM could emit.
	RevertKinds map[legacy.TxRevertKind]struct{}
}

// SupportsRevertKind returns true if the version could emit the given kind.
func (p Policy) SupportsRevertKind(kind legacy.TxRevertKind) bool {
	_, ok := p.RevertKinds[kind]
	return ok
}

// refunds returns the refunds of a converted result. None of the historical
// versions tracked refunds, so this is always the canonical zero value.
func (p Policy) refunds() execution.Refunds {
	return execution.Refunds{}
}

func (p Policy) storageRefunds() []rollup.StorageRefund {
	return []rollup.StorageRefund{}
}

func (p Policy) bootloaderMemory() *execution.BootloaderMemory {
	return nil
}

func revertKinds(kinds ...legacy.TxRevertKind) map[legacy.TxRevertKind]struct{} {
	set := make(map[legacy.TxRevertKind]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}

var m5RevertKinds = []legacy.TxRevertKind{
	legacy.TxRevertEthCall,
	legacy.TxRevertTxReverted,
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

var m6RevertKinds = append(append([]legacy.TxRevertKind{}, m5RevertKinds...),
	legacy.TxRevertMissingInvocationLimitReached,
)

var policies = map[legacy.Version]Policy{
	legacy.VersionM5: {
		TxComputationalGas:       ComputationalGasZero,
		BatchTipComputationalGas: ComputationalGasEqualsGasUsed,
		RevertKinds:              revertKinds(m5RevertKinds...),
	},
	legacy.VersionM6: {
		TxComputationalGas:       ComputationalGasPassThrough,
		BatchTipComputationalGas: ComputationalGasPassThrough,
		RevertKinds:              revertKinds(m6RevertKinds...),
	},
	legacy.Version1_3_2: {
		TxComputationalGas:       ComputationalGasPassThrough,
		BatchTipComputationalGas: ComputationalGasPassThrough,
		RevertKinds:              revertKinds(m6RevertKinds...),
	},
}

func init() {
	// The raw shapes of the historical versions have no refund, storage refund
	// or memory fields. A policy claiming otherwise cannot be honoured.
	for _, version := range legacy.AllVersions() {
		policy, ok := policies[version]
		if !ok {
			panic(fmt.Sprintf("no defaulting policy for vm version %s", version))
		}
		if policy.TracksRefunds || policy.TracksStorageRefunds || policy.ExposesBootloaderMemory {
			panic(fmt.Sprintf("vm version %s has no raw refund or memory data", version))
		}
	}
}

// PolicyFor returns the defaulting policy of the given version.
func PolicyFor(version legacy.Version) (Policy, error) {
	policy, ok := policies[version]
	if !ok {
		return Policy{}, errors.NewUnsupportedVersionFailure(version)
	}
	return policy, nil
}

func mustPolicy(version legacy.Version) Policy {
	policy, err := PolicyFor(version)
	if err != nil {
		panic(err)
	}
	return policy
}
