package importraw

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollup-vm/multivm/cmd/util/cmd/common"
	bstorage "github.com/rollup-vm/multivm/storage/badger"
)

var (
	flagDataDir string
)

var Cmd = &cobra.Command{
	Use:   "import-raw",
	Short: "loads raw results of historical VMs from a cbor file",
	Run:   run,
}

func init() {
	common.InitDataDirFlag(Cmd, &flagDataDir)
	Cmd.Flags().String("input", "", "cbor file holding an array of raw result records (required)")
	Cmd.Flags().Bool("overwrite", false, "replace raw results that are already stored")
}

func run(cmd *cobra.Command, _ []string) {
	if err := common.BindFlags(cmd); err != nil {
		log.Fatal().Err(err).Msg("could not bind flags")
	}
	if err := common.RequireFlags("input"); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	input := viper.GetString("input")
	file, err := os.Open(input)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("could not open input file")
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("could not read records")
	}

	db := common.InitStorage(viper.GetString("data-dir"))
	defer common.CloseStorage(db)

	imported, skipped, err := Import(log.Logger, bstorage.NewRawBlockResults(db), records, viper.GetBool("overwrite"))
	if err != nil {
		log.Fatal().Err(err).Int("imported", imported).Msg("import failed")
	}

	log.Info().
		Int("imported", imported).
		Int("skipped", skipped).
		Msg("raw results imported")
}
