package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	exportbatch "github.com/rollup-vm/multivm/cmd/util/cmd/export-batch"
	importraw "github.com/rollup-vm/multivm/cmd/util/cmd/import-raw"
	replaybatches "github.com/rollup-vm/multivm/cmd/util/cmd/replay-batches"
)

var (
	flagLogLevel string
	flagConfig   string
)

// envPrefix prefixes the environment variables overriding flags, for
// example MULTIVM_WORKERS for --workers.
const envPrefix = "MULTIVM"

var rootCmd = &cobra.Command{
	Use:   "util",
	Short: "tooling for the raw results of historical VMs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogLevel()
	},
}

var RootCmd = rootCmd

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "loglevel", "l", "info",
		"log level (panic, fatal, error, warn, info, debug)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (yaml, json or toml) whose keys override flag defaults")

	cobra.OnInitialize(initConfig)

	addCommands()
}

func addCommands() {
	rootCmd.AddCommand(replaybatches.Cmd)
	rootCmd.AddCommand(exportbatch.Cmd)
	rootCmd.AddCommand(importraw.Cmd)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Str("config", flagConfig).Msg("could not read config file")
		}
		log.Info().Str("config", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func setLogLevel() {
	switch strings.ToLower(flagLogLevel) {
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		log.Fatal().Str("loglevel", flagLogLevel).Msg("unsupported log level")
	}
}
