package legacy

// TxRevertKind is the classification carried by a raw failure descriptor.
// The numeric values are fixed by the legacy storage format.
type TxRevertKind uint8

const (
	TxRevertEthCall                       TxRevertKind = 0
	TxRevertTxReverted                    TxRevertKind = 1
	TxRevertValidationFailed              TxRevertKind = 2
	TxRevertPaymasterValidationFailed     TxRevertKind = 3
	TxRevertPrePaymasterPreparationFailed TxRevertKind = 4
	TxRevertFailedToChargeFee             TxRevertKind = 5
	TxRevertFromIsNotAnAccount            TxRevertKind = 6
	TxRevertInnerTxError                  TxRevertKind = 7
	TxRevertUnknown                       TxRevertKind = 8
	TxRevertUnexpectedVMBehavior          TxRevertKind = 9
	TxRevertBootloaderOutOfGas            TxRevertKind = 10
	TxRevertTooBigGasLimit                TxRevertKind = 11
	TxRevertNotEnoughGasProvided          TxRevertKind = 12
	// introduced with vm_m6
	TxRevertMissingInvocationLimitReached TxRevertKind = 13
)

// VmRevertKind is the classification of a raw revert payload.
type VmRevertKind uint8

const (
	VmRevertGeneral      VmRevertKind = 0
	VmRevertInnerTxError VmRevertKind = 1
	VmRevertVMError      VmRevertKind = 2
	VmRevertUnknown      VmRevertKind = 3
)

// VmRevertReason is the decoded revert payload returned by a contract.
type VmRevertReason struct {
	Kind             VmRevertKind
	Msg              string
	Data             []byte
	FunctionSelector []byte
}

// TxRevertReason is the failure descriptor attached to a raw result. A nil
// descriptor means the execution completed successfully.
//
// Reason holds the revert payload for kinds that carry one. Message holds the
// description for TxRevertUnexpectedVMBehavior.
type TxRevertReason struct {
	Kind    TxRevertKind
	Reason  *VmRevertReason
	Message string
}

// VmRevertReasonParsingResult wraps the descriptor of a full execution result
// together with the undecoded revert data.
type VmRevertReasonParsingResult struct {
	RevertReason TxRevertReason
	OriginalData []byte
}
