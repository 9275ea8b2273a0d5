package multivm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
)

func TestPolicyTable(t *testing.T) {
	for _, version := range legacy.AllVersions() {
		policy, err := PolicyFor(version)
		require.NoError(t, err)

		assert.False(t, policy.TracksRefunds, version)
		assert.False(t, policy.TracksStorageRefunds, version)
		assert.False(t, policy.ExposesBootloaderMemory, version)
		assert.True(t, policy.refunds().IsZero(), version)
		assert.NotNil(t, policy.storageRefunds(), version)
		assert.Empty(t, policy.storageRefunds(), version)
		assert.Nil(t, policy.bootloaderMemory(), version)
	}

	_, err := PolicyFor(legacy.Version(0))
	require.True(t, errors.IsUnsupportedVersionFailure(err))
}

func TestComputationalGasPolicy(t *testing.T) {
	m5 := mustPolicy(legacy.VersionM5)
	assert.Equal(t, ComputationalGasZero, m5.TxComputationalGas)
	assert.Equal(t, ComputationalGasEqualsGasUsed, m5.BatchTipComputationalGas)

	for _, version := range []legacy.Version{legacy.VersionM6, legacy.Version1_3_2} {
		policy := mustPolicy(version)
		assert.Equal(t, ComputationalGasPassThrough, policy.TxComputationalGas)
		assert.Equal(t, ComputationalGasPassThrough, policy.BatchTipComputationalGas)
	}

	assert.Equal(t, uint32(0), ComputationalGasZero.apply(1000, 400))
	assert.Equal(t, uint32(1000), ComputationalGasEqualsGasUsed.apply(1000, 400))
	assert.Equal(t, uint32(400), ComputationalGasPassThrough.apply(1000, 400))

	assert.Equal(t, "pass_through", ComputationalGasPassThrough.String())
	assert.Equal(t, "computational_gas_policy(9)", ComputationalGasPolicy(9).String())
}

func TestRevertKinds(t *testing.T) {
	m5 := mustPolicy(legacy.VersionM5)
	m6 := mustPolicy(legacy.VersionM6)

	for kind := legacy.TxRevertEthCall; kind <= legacy.TxRevertNotEnoughGasProvided; kind++ {
		assert.True(t, m5.SupportsRevertKind(kind), kind)
		assert.True(t, m6.SupportsRevertKind(kind), kind)
	}
	assert.False(t, m5.SupportsRevertKind(legacy.TxRevertMissingInvocationLimitReached))
	assert.True(t, m6.SupportsRevertKind(legacy.TxRevertMissingInvocationLimitReached))

	// every halt producing kind has a halt code
	for kind := range m6.RevertKinds {
		if kind == legacy.TxRevertEthCall || kind == legacy.TxRevertTxReverted {
			continue
		}
		_, ok := haltCodes[kind]
		assert.True(t, ok, kind)
	}
}
