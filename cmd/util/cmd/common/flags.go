package common

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitDataDirFlag registers the --data-dir flag holding the badger database.
func InitDataDirFlag(cmd *cobra.Command, dataDir *string) {
	cmd.Flags().StringVar(dataDir, "data-dir", "/var/multivm/data",
		"directory of the badger database holding raw and sealed batches")
}

// BindFlags makes every flag of the command overridable through the
// environment and the config file. Flags set on the command line win.
func BindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := viper.BindPFlag(flag.Name, flag); err != nil {
			bindErr = err
		}
	})
	return bindErr
}

// RequireFlags checks that every named flag was given on the command line or
// through any other viper source. Call it after BindFlags.
func RequireFlags(names ...string) error {
	var missing []string
	for _, name := range names {
		if !viper.IsSet(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flags not set: %v", missing)
	}
	return nil
}
