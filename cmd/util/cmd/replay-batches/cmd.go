package replaybatches

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollup-vm/multivm/cmd/util/cmd/common"
	"github.com/rollup-vm/multivm/engine/execution/replay"
	"github.com/rollup-vm/multivm/fvm/multivm"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/module/metrics"
	bstorage "github.com/rollup-vm/multivm/storage/badger"
)

var (
	flagDataDir string
)

var Cmd = &cobra.Command{
	Use:   "replay-batches",
	Short: "converts stored raw results into sealed batches",
	Run:   run,
}

func init() {
	defaults := replay.DefaultConfig()

	common.InitDataDirFlag(Cmd, &flagDataDir)
	Cmd.Flags().Uint32("from", 0, "first batch to replay")
	Cmd.Flags().Uint32("to", ^uint32(0), "last batch to replay, inclusive")
	Cmd.Flags().Int("workers", defaults.Workers, "number of batches converted concurrently")
	Cmd.Flags().Uint("cache-size", defaults.CacheSize, "number of sealed batches kept in memory")
	Cmd.Flags().Bool("stop-on-failure", defaults.StopOnFailure, "stop at the first batch that fails to convert")
	Cmd.Flags().Bool("reseal", defaults.Reseal, "convert batches that have been sealed before")
	Cmd.Flags().Uint("metrics-port", 0, "port serving prometheus metrics during the replay, 0 disables it")
}

func run(cmd *cobra.Command, _ []string) {
	if err := common.BindFlags(cmd); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}

	config := replay.Config{
		Workers:       viper.GetInt("workers"),
		CacheSize:     viper.GetUint("cache-size"),
		StopOnFailure: viper.GetBool("stop-on-failure"),
		Reseal:        viper.GetBool("reseal"),
	}
	from := rollup.L1BatchNumber(viper.GetUint32("from"))
	to := rollup.L1BatchNumber(viper.GetUint32("to"))
	dataDir := viper.GetString("data-dir")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := prometheus.NewRegistry()
	if port := viper.GetUint("metrics-port"); port != 0 {
		go metrics.NewServer(log.Logger, port, registry).Run(ctx)
	}
	cacheMetrics := metrics.NewCacheCollector(registry)
	adapterMetrics := metrics.NewAdapterCollector(registry)
	replayMetrics := metrics.NewReplayCollector(registry)

	db := common.InitStorage(dataDir)
	defer common.CloseStorage(db)

	bar := progressbar.Default(-1, "replaying")
	defer func() {
		_ = bar.Finish()
	}()

	engine, err := replay.New(
		log.Logger,
		config,
		multivm.NewAdapter(log.Logger, adapterMetrics),
		bstorage.NewRawBlockResults(db),
		bstorage.NewFinishedL1Batches(cacheMetrics, db, config.CacheSize),
		replayMetrics,
		replay.WithProgress(bar),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create replay engine")
	}

	summary, err := engine.Run(ctx, from, to)
	for _, failure := range summary.Quarantined {
		log.Warn().Err(failure.Err).Uint32("batch", uint32(failure.Batch)).Msg("quarantined batch")
	}
	if err != nil {
		log.Fatal().Err(err).
			Uint64("replayed", summary.Replayed).
			Int("quarantined", len(summary.Quarantined)).
			Msg("replay failed")
	}

	log.Info().
		Uint64("replayed", summary.Replayed).
		Uint64("skipped", summary.Skipped).
		Msg("replay completed")
}
