package execution

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rollup-vm/multivm/model/rollup"
)

// RevertReasonKind tags the variant of a RevertReason.
type RevertReasonKind uint8

const (
	// RevertGeneral is a revert with a decoded message.
	RevertGeneral RevertReasonKind = iota
	// RevertInnerTxError is a failure of the transaction inside the bootloader.
	RevertInnerTxError
	// RevertVMError is a failure of the VM itself.
	RevertVMError
	// RevertUnknown is a revert whose payload could not be decoded.
	RevertUnknown
)

func (k RevertReasonKind) String() string {
	switch k {
	case RevertGeneral:
		return "general"
	case RevertInnerTxError:
		return "inner_tx_error"
	case RevertVMError:
		return "vm_error"
	case RevertUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("revert_reason_kind(%d)", uint8(k))
	}
}

// RevertReason describes why a contract call reverted.
//
// Msg and Data are set for RevertGeneral. FunctionSelector and Data are set
// for RevertUnknown.
type RevertReason struct {
	Kind             RevertReasonKind
	Msg              string
	Data             []byte
	FunctionSelector []byte
}

// NewGeneralRevertReason returns a decoded revert with a message.
func NewGeneralRevertReason(msg string, data []byte) RevertReason {
	return RevertReason{Kind: RevertGeneral, Msg: msg, Data: rollup.CopyBytes(data)}
}

// NewUnknownRevertReason returns a revert whose payload could not be decoded.
func NewUnknownRevertReason(selector []byte, data []byte) RevertReason {
	return RevertReason{
		Kind:             RevertUnknown,
		FunctionSelector: rollup.CopyBytes(selector),
		Data:             rollup.CopyBytes(data),
	}
}

// Copy returns a deep copy of the reason.
func (r RevertReason) Copy() RevertReason {
	return RevertReason{
		Kind:             r.Kind,
		Msg:              r.Msg,
		Data:             rollup.CopyBytes(r.Data),
		FunctionSelector: rollup.CopyBytes(r.FunctionSelector),
	}
}

func (r RevertReason) String() string {
	switch r.Kind {
	case RevertGeneral:
		return r.Msg
	case RevertInnerTxError:
		return "Bootloader-based tx failed"
	case RevertVMError:
		return "VM Error"
	case RevertUnknown:
		return fmt.Sprintf("Error function_selector = %s, data = %s",
			hexutil.Encode(r.FunctionSelector), hexutil.Encode(r.Data))
	default:
		return r.Kind.String()
	}
}
