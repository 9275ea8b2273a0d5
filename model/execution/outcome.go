package execution

import (
	"fmt"

	"github.com/rollup-vm/multivm/model/rollup"
)

// Status is the tag of an Outcome.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusRevert
	StatusHalt
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRevert:
		return "revert"
	case StatusHalt:
		return "halt"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Outcome is the tri-state result of an execution. Exactly one of Output,
// Revert and Halt is meaningful, selected by Status. Values must be built with
// NewSuccess, NewRevert or NewHalt so a Success always carries its payload.
type Outcome struct {
	Status Status
	// Output is the full return data of a successful execution.
	Output []byte
	Revert *RevertReason
	Halt   *Halt
}

// NewSuccess returns a Success outcome carrying a copy of output.
func NewSuccess(output []byte) Outcome {
	return Outcome{
		Status: StatusSuccess,
		Output: rollup.CopyBytes(output),
	}
}

// NewRevert returns a Revert outcome.
func NewRevert(reason RevertReason) Outcome {
	r := reason.Copy()
	return Outcome{
		Status: StatusRevert,
		Revert: &r,
	}
}

// NewHalt returns a Halt outcome.
func NewHalt(halt Halt) Outcome {
	h := halt.Copy()
	return Outcome{
		Status: StatusHalt,
		Halt:   &h,
	}
}

// IsSuccess returns true for Success outcomes.
func (o Outcome) IsSuccess() bool { return o.Status == StatusSuccess }

// IsFailed returns true for Revert and Halt outcomes.
func (o Outcome) IsFailed() bool { return o.Status != StatusSuccess }

// ReturnData returns the output of a successful execution and nil otherwise.
func (o Outcome) ReturnData() []byte {
	if o.Status != StatusSuccess {
		return nil
	}
	return o.Output
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusSuccess:
		return fmt.Sprintf("success(output=%d bytes)", len(o.Output))
	case StatusRevert:
		if o.Revert == nil {
			return "revert(<nil>)"
		}
		return fmt.Sprintf("revert(%s)", o.Revert.String())
	case StatusHalt:
		if o.Halt == nil {
			return "halt(<nil>)"
		}
		return fmt.Sprintf("halt(%s)", o.Halt.String())
	default:
		return o.Status.String()
	}
}
