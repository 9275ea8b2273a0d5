package execution

import (
	"errors"
	"fmt"
)

var (
	ErrLogQueriesMismatch = errors.New("log query count differs between logs and statistics")
	ErrComputationalGas   = errors.New("computational gas exceeds gas used")
	ErrMalformedOutcome   = errors.New("outcome does not hold exactly one variant")
)

// Validate checks that the outcome holds exactly the payload of its variant.
func (o Outcome) Validate() error {
	switch o.Status {
	case StatusSuccess:
		if o.Revert != nil || o.Halt != nil {
			return fmt.Errorf("success with failure payload: %w", ErrMalformedOutcome)
		}
	case StatusRevert:
		if o.Revert == nil || o.Halt != nil || o.Output != nil {
			return fmt.Errorf("revert: %w", ErrMalformedOutcome)
		}
	case StatusHalt:
		if o.Halt == nil || o.Revert != nil || o.Output != nil {
			return fmt.Errorf("halt: %w", ErrMalformedOutcome)
		}
		if o.Halt.Code.RequiresReason() && o.Halt.Reason == nil {
			return fmt.Errorf("halt %s without reason: %w", o.Halt.Code, ErrMalformedOutcome)
		}
	default:
		return fmt.Errorf("unknown status %d: %w", o.Status, ErrMalformedOutcome)
	}
	return nil
}

// Validate checks the cross-field invariants of the result.
// Computational gas is only compared when both metrics are populated.
func (r ResultAndLogs) Validate() error {
	if err := r.Outcome.Validate(); err != nil {
		return err
	}
	if r.Logs.TotalLogQueriesCount != r.Statistics.TotalLogQueries {
		return fmt.Errorf("%w: logs=%d statistics=%d",
			ErrLogQueriesMismatch, r.Logs.TotalLogQueriesCount, r.Statistics.TotalLogQueries)
	}
	s := r.Statistics
	if s.ComputationalGasUsed != 0 && s.GasUsed != 0 && s.GasUsed < s.ComputationalGasUsed {
		return fmt.Errorf("%w: gas_used=%d computational_gas_used=%d",
			ErrComputationalGas, s.GasUsed, s.ComputationalGasUsed)
	}
	return nil
}

// Validate checks the block tip result of the batch.
func (b FinishedL1Batch) Validate() error {
	if err := b.BlockTipExecutionResult.Validate(); err != nil {
		return fmt.Errorf("invalid block tip result: %w", err)
	}
	return nil
}
