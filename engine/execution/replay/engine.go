package replay

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	fvmerrors "github.com/rollup-vm/multivm/fvm/errors"
	"github.com/rollup-vm/multivm/fvm/multivm"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/module"
	"github.com/rollup-vm/multivm/storage"
)

// ErrStopped is returned when a run was stopped at the first failing batch.
var ErrStopped = errors.New("replay stopped on failure")

// BatchFailure is a batch that could not be sealed. Err always carries a
// failure code, errors without one are reported as unknown failures.
type BatchFailure struct {
	Batch rollup.L1BatchNumber
	Err   error
}

func (f BatchFailure) Error() string {
	return fmt.Sprintf("batch %d: %v", f.Batch, f.Err)
}

func (f BatchFailure) Unwrap() error {
	return f.Err
}

// Summary reports the result of a replay run.
type Summary struct {
	Replayed uint64
	Skipped  uint64
	// Quarantined lists the failed batches in ascending order.
	Quarantined []BatchFailure
}

// Progress tracks the number of batches handled by a run. It is satisfied by
// *progressbar.ProgressBar.
type Progress interface {
	ChangeMax(max int)
	Add(num int) error
}

type noopProgress struct{}

func (noopProgress) ChangeMax(int) {}
func (noopProgress) Add(int) error { return nil }

// Option configures optional collaborators of the engine.
type Option func(*Engine)

// WithProgress reports every handled batch to the given progress tracker.
func WithProgress(progress Progress) Option {
	return func(e *Engine) {
		e.progress = progress
	}
}

// Engine re-seals historical batches: it loads the raw result of every stored
// batch, converts it into a canonical sealed batch and stores the result.
type Engine struct {
	log      zerolog.Logger
	config   Config
	adapter  *multivm.Adapter
	raws     storage.RawBlockResults
	sealed   storage.FinishedL1Batches
	metrics  module.ReplayMetrics
	progress Progress
}

func New(
	log zerolog.Logger,
	config Config,
	adapter *multivm.Adapter,
	raws storage.RawBlockResults,
	sealed storage.FinishedL1Batches,
	metrics module.ReplayMetrics,
	opts ...Option,
) (*Engine, error) {
	if config.Workers < 1 {
		return nil, fmt.Errorf("invalid number of workers: %d", config.Workers)
	}
	e := &Engine{
		log:      log.With().Str("engine", "replay").Logger(),
		config:   config,
		adapter:  adapter,
		raws:     raws,
		sealed:   sealed,
		metrics:  metrics,
		progress: noopProgress{},
	}
	for _, apply := range opts {
		apply(e)
	}
	return e, nil
}

// Run replays all stored batches within the inclusive range [from, to].
//
// A batch that fails is quarantined and reported in the summary; the returned
// error aggregates every failure. Batches are independent, so the outcome of
// a run does not depend on the number of workers.
func (e *Engine) Run(ctx context.Context, from, to rollup.L1BatchNumber) (Summary, error) {
	batches, err := e.raws.BatchNumbers(from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("could not list raw batches: %w", err)
	}

	log := e.log.With().
		Uint32("from", uint32(from)).
		Uint32("to", uint32(to)).
		Int("batches", len(batches)).
		Int("workers", e.config.Workers).
		Logger()
	log.Info().Msg("starting replay")
	e.progress.ChangeMax(len(batches))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	replayed := atomic.NewUint64(0)
	skipped := atomic.NewUint64(0)
	stopped := atomic.NewBool(false)

	var mu sync.Mutex
	var quarantined []BatchFailure

	pool := workerpool.New(e.config.Workers)
	for _, batch := range batches {
		if runCtx.Err() != nil {
			break
		}
		batch := batch
		pool.Submit(func() {
			if runCtx.Err() != nil {
				return
			}

			sealed, err := e.replayBatch(batch)
			_ = e.progress.Add(1)
			if err != nil {
				if !fvmerrors.IsFailure(err) {
					err = fvmerrors.NewUnknownFailure(err)
				}
				e.metrics.BatchQuarantined()
				log.Warn().Err(err).Uint32("batch", uint32(batch)).Msg("batch quarantined")

				mu.Lock()
				quarantined = append(quarantined, BatchFailure{Batch: batch, Err: err})
				mu.Unlock()

				if e.config.StopOnFailure {
					stopped.Store(true)
					cancel()
				}
				return
			}
			if sealed {
				replayed.Inc()
			} else {
				skipped.Inc()
			}
		})
	}
	pool.StopWait()

	sort.Slice(quarantined, func(i, j int) bool {
		return quarantined[i].Batch < quarantined[j].Batch
	})
	summary := Summary{
		Replayed:    replayed.Load(),
		Skipped:     skipped.Load(),
		Quarantined: quarantined,
	}

	log.Info().
		Uint64("replayed", summary.Replayed).
		Uint64("skipped", summary.Skipped).
		Int("quarantined", len(summary.Quarantined)).
		Msg("replay finished")

	var errs *multierror.Error
	for _, failure := range quarantined {
		errs = multierror.Append(errs, failure)
	}
	if stopped.Load() {
		errs = multierror.Append(errs, ErrStopped)
	}
	if err := ctx.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return summary, errs.ErrorOrNil()
}

// replayBatch seals a single batch. It returns false if the batch was sealed
// before and resealing is disabled.
func (e *Engine) replayBatch(batch rollup.L1BatchNumber) (bool, error) {
	start := time.Now()

	if !e.config.Reseal {
		exists, err := e.sealed.Exists(batch)
		if err != nil {
			return false, fmt.Errorf("could not check sealed batch: %w", err)
		}
		if exists {
			return false, nil
		}
	}

	raw, err := e.raws.ByBatchNumber(batch)
	if err != nil {
		return false, fmt.Errorf("could not load raw result: %w", err)
	}

	finished, err := e.adapter.ToFinishedL1Batch(raw)
	if err != nil {
		return false, e.dropSeal(batch, fmt.Errorf("could not convert raw result: %w", err))
	}

	err = finished.Validate()
	if err != nil {
		return false, e.dropSeal(batch, fmt.Errorf("converted batch is inconsistent: %w", err))
	}

	err = e.sealed.Store(batch, &finished)
	if err != nil {
		return false, fmt.Errorf("could not store sealed batch: %w", err)
	}

	e.metrics.BatchReplayed(time.Since(start))
	e.metrics.ReplayedBatchNumber(uint64(batch))

	return true, nil
}

// dropSeal removes an earlier seal of a batch that failed to convert during a
// reseal. It returns cause, joined with the removal error if there is one.
func (e *Engine) dropSeal(batch rollup.L1BatchNumber, cause error) error {
	if !e.config.Reseal {
		return cause
	}
	err := e.sealed.Remove(batch)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return multierror.Append(cause, fmt.Errorf("could not remove stale seal: %w", err))
	}
	return cause
}
