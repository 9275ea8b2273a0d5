package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fvmerrors "github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/utils/unittest"
)

func TestCodec(t *testing.T) {
	t.Run("compressed round trip", func(t *testing.T) {
		expected := unittest.FinishedL1BatchFixture()

		val, err := encodeEntity(&expected)
		require.NoError(t, err)

		var actual execution.FinishedL1Batch
		require.NoError(t, decodeValue(val, &actual))
		assert.Equal(t, expected, actual)
	})

	t.Run("uncompressed values are detected", func(t *testing.T) {
		expected := unittest.FinishedL1BatchFixture()
		val, err := encodeEntityRaw(&expected)
		require.NoError(t, err)

		var actual execution.FinishedL1Batch
		err = decodeCompressed(val, &actual)
		require.Error(t, err)
		assert.True(t, isErrUncompressedValue(err))
		assert.True(t, fvmerrors.IsEncodingFailure(err))
	})

	t.Run("undecodable values are encoding failures", func(t *testing.T) {
		var actual execution.FinishedL1Batch
		err := decodeValRaw([]byte{0xc1}, &actual)
		assert.True(t, fvmerrors.IsEncodingFailure(err))
	})
}

func TestCodecWithoutCompression(t *testing.T) {
	setCompressDisabled()
	defer func() { compressEnabled = true }()

	expected := unittest.FinishedL1BatchFixture()
	val, err := encodeEntity(&expected)
	require.NoError(t, err)

	var actual execution.FinishedL1Batch
	require.NoError(t, decodeValRaw(val, &actual))
	assert.Equal(t, expected, actual)
}
