package execution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/model/execution"
)

func TestOutcome(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		output := []byte{0xaa, 0xbb}
		outcome := execution.NewSuccess(output)
		output[0] = 0

		assert.True(t, outcome.IsSuccess())
		assert.False(t, outcome.IsFailed())
		assert.Equal(t, []byte{0xaa, 0xbb}, outcome.ReturnData())
		assert.Equal(t, "success(output=2 bytes)", outcome.String())
	})

	t.Run("revert", func(t *testing.T) {
		reason := execution.NewGeneralRevertReason("nope", []byte{1})
		outcome := execution.NewRevert(reason)
		reason.Data[0] = 9

		assert.True(t, outcome.IsFailed())
		assert.Nil(t, outcome.ReturnData())
		assert.Equal(t, []byte{1}, outcome.Revert.Data)
		assert.Equal(t, "revert(nope)", outcome.String())
	})

	t.Run("halt", func(t *testing.T) {
		reason := execution.NewUnknownRevertReason([]byte{0x01, 0x02}, []byte{0x03})
		outcome := execution.NewHalt(execution.Halt{Code: execution.HaltUnknown, Reason: &reason})
		reason.FunctionSelector[0] = 0xff

		require.NotNil(t, outcome.Halt.Reason)
		assert.Equal(t, []byte{0x01, 0x02}, outcome.Halt.Reason.FunctionSelector)
		assert.Nil(t, outcome.ReturnData())
		assert.Contains(t, outcome.String(), "0x0102")
	})
}

func TestHaltCode(t *testing.T) {
	assert.Equal(t, "bootloader_out_of_gas", execution.HaltBootloaderOutOfGas.String())
	assert.Equal(t, "halt_code(99)", execution.HaltCode(99).String())

	requiring := map[execution.HaltCode]bool{
		execution.HaltValidationFailed:              true,
		execution.HaltPaymasterValidationFailed:     true,
		execution.HaltPrePaymasterPreparationFailed: true,
		execution.HaltFailedToChargeFee:             true,
		execution.HaltUnknown:                       true,
	}
	for code := execution.HaltValidationFailed; code <= execution.HaltMissingInvocationLimitReached; code++ {
		assert.Equal(t, requiring[code], code.RequiresReason(), code)
	}
}
