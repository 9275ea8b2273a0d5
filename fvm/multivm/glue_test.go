package multivm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/utils/unittest"
)

// every known version must have a converter wired into the dispatch
func TestGlueCoversAllVersions(t *testing.T) {
	for _, version := range legacy.AllVersions() {
		raw := unittest.BlockResultFixture(version)

		result, err := multivm.GlueInto[execution.ResultAndLogs](raw)
		require.NoError(t, err, version)
		require.NoError(t, result.Validate(), version)

		batch, err := multivm.GlueInto[execution.FinishedL1Batch](raw)
		require.NoError(t, err, version)
		require.NoError(t, batch.Validate(), version)
	}
}

func TestGlueInto(t *testing.T) {
	t.Run("pointer and value forms convert alike", func(t *testing.T) {
		raw := unittest.V3BlockResultFixture()

		byValue, err := multivm.GlueInto[execution.FinishedL1Batch](raw)
		require.NoError(t, err)
		byPointer, err := multivm.GlueInto[execution.FinishedL1Batch](&raw)
		require.NoError(t, err)
		require.Equal(t, byValue, byPointer)
	})

	t.Run("nil results are unsupported", func(t *testing.T) {
		var typedNil *legacy.V2BlockResult

		for _, raw := range []legacy.BlockResult{nil, typedNil} {
			_, err := multivm.GlueInto[execution.ResultAndLogs](raw)
			require.True(t, errors.IsUnsupportedVersionFailure(err))
			require.Contains(t, err.Error(), "<nil>")

			_, err = multivm.GlueInto[execution.FinishedL1Batch](raw)
			require.True(t, errors.IsUnsupportedVersionFailure(err))
		}
	})

	t.Run("glue matches the direct conversion", func(t *testing.T) {
		raw := unittest.V1BlockResultFixture()

		glued, err := multivm.GlueInto[execution.ResultAndLogs](raw)
		require.NoError(t, err)
		direct, err := multivm.ToResultAndLogs(raw)
		require.NoError(t, err)
		require.Equal(t, direct, glued)
	})
}

func TestGlueFrom(t *testing.T) {
	t.Run("fills the destination", func(t *testing.T) {
		raw := unittest.V2BlockResultFixture()

		var batch execution.FinishedL1Batch
		require.NoError(t, multivm.GlueFrom(&batch, raw))
		require.Equal(t, raw.FullResult.CyclesUsed, batch.FinalExecutionState.CyclesUsed)
	})

	t.Run("leaves the destination untouched on error", func(t *testing.T) {
		raw := unittest.V2BlockResultFixture(func(r *legacy.V2BlockResult) {
			r.FullResult.RevertReason = &legacy.VmRevertReasonParsingResult{
				RevertReason: legacy.TxRevertReason{Kind: legacy.TxRevertKind(77)},
			}
		})

		dst := execution.ResultAndLogs{Statistics: execution.Statistics{GasUsed: 42}}
		err := multivm.GlueFrom(&dst, raw)
		require.True(t, errors.IsMalformedFailureDescriptorFailure(err))
		require.Equal(t, uint32(42), dst.Statistics.GasUsed)
	})
}
