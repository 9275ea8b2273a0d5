package multivm

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm/legacy"
	"github.com/rollup-vm/multivm/model/execution"
	"github.com/rollup-vm/multivm/module"
	"github.com/rollup-vm/multivm/module/metrics"
)

// Adapter converts raw results of historical VMs into canonical results,
// logging and counting every conversion. It holds no mutable state and is
// safe for concurrent use.
type Adapter struct {
	log     zerolog.Logger
	metrics module.AdapterMetrics
}

func NewAdapter(log zerolog.Logger, metrics module.AdapterMetrics) *Adapter {
	return &Adapter{
		log:     log.With().Str("component", "multivm_adapter").Logger(),
		metrics: metrics,
	}
}

// ToResultAndLogs converts the full result of raw into a canonical execution
// result.
func (a *Adapter) ToResultAndLogs(raw legacy.BlockResult) (execution.ResultAndLogs, error) {
	result, err := GlueInto[execution.ResultAndLogs](raw)
	if err != nil {
		a.failed(raw, metrics.KindResultAndLogs, err)
		return execution.ResultAndLogs{}, err
	}
	a.completed(raw, metrics.KindResultAndLogs, result)
	return result, nil
}

// ToFinishedL1Batch converts raw into a canonical sealed batch.
func (a *Adapter) ToFinishedL1Batch(raw legacy.BlockResult) (execution.FinishedL1Batch, error) {
	batch, err := GlueInto[execution.FinishedL1Batch](raw)
	if err != nil {
		a.failed(raw, metrics.KindFinishedL1Batch, err)
		return execution.FinishedL1Batch{}, err
	}
	a.completed(raw, metrics.KindFinishedL1Batch, batch.BlockTipExecutionResult)
	return batch, nil
}

func (a *Adapter) completed(raw legacy.BlockResult, kind string, result execution.ResultAndLogs) {
	version := versionLabel(raw)
	a.metrics.ConversionCompleted(version, kind, result.Outcome.Status.String())

	a.log.Debug().
		Str("version", version).
		Str("kind", kind).
		Str("outcome", result.Outcome.Status.String()).
		Uint32("gas_used", result.Statistics.GasUsed).
		Uint32("computational_gas_used", result.Statistics.ComputationalGasUsed).
		Uint64("total_log_queries", result.Statistics.TotalLogQueries).
		Msg("converted raw vm result")
}

func (a *Adapter) failed(raw legacy.BlockResult, kind string, err error) {
	version := versionLabel(raw)
	code := errors.FailureCodeOf(err)
	a.metrics.ConversionFailed(version, kind, strconv.Itoa(int(code)))

	a.log.Error().
		Err(err).
		Str("version", version).
		Str("kind", kind).
		Uint16("failure_code", uint16(code)).
		Msg("could not convert raw vm result")
}

func versionLabel(raw legacy.BlockResult) string {
	switch v := versionOf(raw).(type) {
	case legacy.Version:
		return v.String()
	default:
		return "unknown"
	}
}
