package execution

import (
	"fmt"
)

// HaltCode identifies why the bootloader stopped executing a transaction
// without a regular revert.
type HaltCode uint16

const (
	HaltValidationFailed HaltCode = iota + 1
	HaltPaymasterValidationFailed
	HaltPrePaymasterPreparationFailed
	HaltFailedToChargeFee
	HaltFromIsNotAnAccount
	HaltInnerTxError
	HaltUnknown
	HaltUnexpectedVMBehavior
	HaltBootloaderOutOfGas
	HaltTooBigGasLimit
	HaltNotEnoughGasProvided
	HaltMissingInvocationLimitReached
)

var haltCodeNames = map[HaltCode]string{
	HaltValidationFailed:              "validation_failed",
	HaltPaymasterValidationFailed:     "paymaster_validation_failed",
	HaltPrePaymasterPreparationFailed: "pre_paymaster_preparation_failed",
	HaltFailedToChargeFee:             "failed_to_charge_fee",
	HaltFromIsNotAnAccount:            "from_is_not_an_account",
	HaltInnerTxError:                  "inner_tx_error",
	HaltUnknown:                       "unknown",
	HaltUnexpectedVMBehavior:          "unexpected_vm_behavior",
	HaltBootloaderOutOfGas:            "bootloader_out_of_gas",
	HaltTooBigGasLimit:                "too_big_gas_limit",
	HaltNotEnoughGasProvided:          "not_enough_gas_provided",
	HaltMissingInvocationLimitReached: "missing_invocation_limit_reached",
}

func (c HaltCode) String() string {
	if name, ok := haltCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("halt_code(%d)", uint16(c))
}

// RequiresReason returns true for halt codes that carry a RevertReason.
func (c HaltCode) RequiresReason() bool {
	switch c {
	case HaltValidationFailed,
		HaltPaymasterValidationFailed,
		HaltPrePaymasterPreparationFailed,
		HaltFailedToChargeFee,
		HaltUnknown:
		return true
	default:
		return false
	}
}

// Halt is the reason a transaction was halted by the bootloader.
//
// Reason is set for codes where RequiresReason is true. Message is only used
// by HaltUnexpectedVMBehavior.
type Halt struct {
	Code    HaltCode
	Reason  *RevertReason
	Message string
}

// Copy returns a deep copy of the halt.
func (h Halt) Copy() Halt {
	cp := Halt{Code: h.Code, Message: h.Message}
	if h.Reason != nil {
		r := h.Reason.Copy()
		cp.Reason = &r
	}
	return cp
}

func (h Halt) String() string {
	reason := ""
	if h.Reason != nil {
		reason = h.Reason.String()
	}
	switch h.Code {
	case HaltValidationFailed:
		return fmt.Sprintf("Account validation error: %s", reason)
	case HaltPaymasterValidationFailed:
		return fmt.Sprintf("Paymaster validation error: %s", reason)
	case HaltPrePaymasterPreparationFailed:
		return fmt.Sprintf("Pre-paymaster preparation error: %s", reason)
	case HaltFailedToChargeFee:
		return fmt.Sprintf("Failed to charge fee: %s", reason)
	case HaltFromIsNotAnAccount:
		return "Sender is not an account"
	case HaltInnerTxError:
		return "Bootloader-based tx failed"
	case HaltUnknown:
		return fmt.Sprintf("Unknown reason: %s", reason)
	case HaltUnexpectedVMBehavior:
		return fmt.Sprintf("virtual machine entered unexpected state. Please contact developers and provide transaction details that caused this error. Error description: %s", h.Message)
	case HaltBootloaderOutOfGas:
		return "Bootloader out of gas"
	case HaltTooBigGasLimit:
		return "Transaction has a too big ergs limit and will not be executed by the server"
	case HaltNotEnoughGasProvided:
		return "Bootloader did not have enough gas to start the transaction"
	case HaltMissingInvocationLimitReached:
		return "Tx produced too much cycles and exceeded the limit"
	default:
		return h.Code.String()
	}
}
