package exportbatch

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollup-vm/multivm/cmd/util/cmd/common"
	"github.com/rollup-vm/multivm/model/rollup"
	"github.com/rollup-vm/multivm/module/metrics"
	bstorage "github.com/rollup-vm/multivm/storage/badger"
)

var (
	flagDataDir string
)

var Cmd = &cobra.Command{
	Use:   "export-batch",
	Short: "prints a sealed batch as json or cbor",
	Run:   run,
}

func init() {
	common.InitDataDirFlag(Cmd, &flagDataDir)
	Cmd.Flags().Uint32("batch", 0, "number of the sealed batch (required)")
	Cmd.Flags().String("format", FormatJSON, "output format (json, cbor)")
	Cmd.Flags().String("output", "", "output file, defaults to stdout")
}

func run(cmd *cobra.Command, _ []string) {
	if err := common.BindFlags(cmd); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}
	if err := common.RequireFlags("batch"); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	batch := rollup.L1BatchNumber(viper.GetUint32("batch"))
	format := viper.GetString("format")

	db := common.InitStorage(viper.GetString("data-dir"))
	defer common.CloseStorage(db)

	sealed := bstorage.NewFinishedL1Batches(metrics.NewNoopCollector(), db, 1)
	finished, err := sealed.ByBatchNumber(batch)
	if err != nil {
		log.Fatal().Err(err).Uint32("batch", uint32(batch)).Msg("could not get sealed batch")
	}

	out := os.Stdout
	if path := viper.GetString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Str("output", path).Msg("could not create output file")
		}
		defer file.Close()
		out = file
	}

	err = Export(out, finished, format)
	if err != nil {
		log.Fatal().Err(err).Str("format", format).Msg("could not export sealed batch")
	}

	log.Info().Uint32("batch", uint32(batch)).Str("format", format).Msg("sealed batch exported")
}
