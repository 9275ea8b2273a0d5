package multivm_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/module/metrics"
	"github.com/rollup-vm/multivm/utils/unittest"
)

// counterValue sums the counter of the given family across all series whose
// labels contain the given pairs.
func counterValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	families, err := registry.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, pair := range metric.GetLabel() {
		if value, ok := labels[pair.GetName()]; ok {
			if value != pair.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(labels)
}

func TestAdapter(t *testing.T) {
	registry := prometheus.NewRegistry()
	adapter := multivm.NewAdapter(unittest.Logger(), metrics.NewAdapterCollector(registry))

	t.Run("conversions are counted by version and status", func(t *testing.T) {
		_, err := adapter.ToResultAndLogs(unittest.V1BlockResultFixture())
		require.NoError(t, err)

		reverted := unittest.V3BlockResultFixture(func(r *legacy.V3BlockResult) {
			r.BlockTipResult.RevertReason = unittest.TxRevertReasonFixture(legacy.TxRevertTxReverted)
		})
		batch, err := adapter.ToFinishedL1Batch(reverted)
		require.NoError(t, err)
		require.True(t, batch.BlockTipExecutionResult.Outcome.IsFailed())

		require.Equal(t, 1.0, counterValue(t, registry, "multivm_adapter_conversions_total", map[string]string{
			metrics.LabelVersion: legacy.VersionM5.String(),
			metrics.LabelKind:    metrics.KindResultAndLogs,
			metrics.LabelStatus:  "success",
		}))
		require.Equal(t, 1.0, counterValue(t, registry, "multivm_adapter_conversions_total", map[string]string{
			metrics.LabelVersion: legacy.Version1_3_2.String(),
			metrics.LabelKind:    metrics.KindFinishedL1Batch,
			metrics.LabelStatus:  "revert",
		}))
	})

	t.Run("failures are counted and returned", func(t *testing.T) {
		malformed := unittest.V1BlockResultFixture(func(r *legacy.V1BlockResult) {
			r.BlockTipResult.RevertReason = &legacy.TxRevertReason{Kind: legacy.TxRevertMissingInvocationLimitReached}
		})

		_, err := adapter.ToFinishedL1Batch(malformed)
		require.True(t, errors.IsMalformedFailureDescriptorFailure(err))

		_, err = adapter.ToResultAndLogs(nil)
		require.True(t, errors.IsUnsupportedVersionFailure(err))

		require.Equal(t, 1.0, counterValue(t, registry, "multivm_adapter_conversion_failures_total", map[string]string{
			metrics.LabelVersion: legacy.VersionM5.String(),
			metrics.LabelKind:    metrics.KindFinishedL1Batch,
			metrics.LabelCode:    "2001",
		}))
		require.Equal(t, 1.0, counterValue(t, registry, "multivm_adapter_conversion_failures_total", map[string]string{
			metrics.LabelVersion: "unknown",
			metrics.LabelCode:    "2002",
		}))
	})
}

func TestAdapterWithNoopMetrics(t *testing.T) {
	adapter := multivm.NewAdapter(unittest.Logger(), metrics.NewNoopCollector())

	for _, version := range legacy.AllVersions() {
		batch, err := adapter.ToFinishedL1Batch(unittest.BlockResultFixture(version))
		require.NoError(t, err)
		require.NoError(t, batch.Validate())
	}
}
