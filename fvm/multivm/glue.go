package multivm

import (
	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
)

// Canonical is the set of canonical types a raw block result converts into.
type Canonical interface {
	execution.ResultAndLogs | execution.FinishedL1Batch
}

// GlueInto converts a raw block result into the canonical type T.
func GlueInto[T Canonical](raw legacy.BlockResult) (T, error) {
	var out T
	switch dst := any(&out).(type) {
	case *execution.ResultAndLogs:
		result, err := ToResultAndLogs(raw)
		if err != nil {
			return out, err
		}
		*dst = result
	case *execution.FinishedL1Batch:
		batch, err := ToFinishedL1Batch(raw)
		if err != nil {
			return out, err
		}
		*dst = batch
	}
	return out, nil
}

// GlueFrom fills dst with the canonical conversion of a raw block result. dst
// is left untouched on error.
func GlueFrom[T Canonical](dst *T, raw legacy.BlockResult) error {
	out, err := GlueInto[T](raw)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

// ToResultAndLogs converts the full result of a raw block result into the
// canonical execution result.
func ToResultAndLogs(raw legacy.BlockResult) (execution.ResultAndLogs, error) {
	switch r := raw.(type) {
	case legacy.V1BlockResult:
		return vmM5ToResultAndLogs(r)
	case *legacy.V1BlockResult:
		if r != nil {
			return vmM5ToResultAndLogs(*r)
		}
	case legacy.V2BlockResult:
		return vmM6ToResultAndLogs(r)
	case *legacy.V2BlockResult:
		if r != nil {
			return vmM6ToResultAndLogs(*r)
		}
	case legacy.V3BlockResult:
		return vm132ToResultAndLogs(r)
	case *legacy.V3BlockResult:
		if r != nil {
			return vm132ToResultAndLogs(*r)
		}
	}
	return execution.ResultAndLogs{}, errors.NewUnsupportedVersionFailure(versionOf(raw))
}

// ToFinishedL1Batch converts a raw block result into the canonical sealed
// batch.
func ToFinishedL1Batch(raw legacy.BlockResult) (execution.FinishedL1Batch, error) {
	switch r := raw.(type) {
	case legacy.V1BlockResult:
		return vmM5ToFinishedL1Batch(r)
	case *legacy.V1BlockResult:
		if r != nil {
			return vmM5ToFinishedL1Batch(*r)
		}
	case legacy.V2BlockResult:
		return vmM6ToFinishedL1Batch(r)
	case *legacy.V2BlockResult:
		if r != nil {
			return vmM6ToFinishedL1Batch(*r)
		}
	case legacy.V3BlockResult:
		return vm132ToFinishedL1Batch(r)
	case *legacy.V3BlockResult:
		if r != nil {
			return vm132ToFinishedL1Batch(*r)
		}
	}
	return execution.FinishedL1Batch{}, errors.NewUnsupportedVersionFailure(versionOf(raw))
}

func versionOf(raw legacy.BlockResult) interface{} {
	if legacy.IsNil(raw) {
		return "<nil>"
	}
	return raw.Version()
}
