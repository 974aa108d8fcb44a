package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

func showHelp(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clfstat",
		Short: "Parse Apache combined access logs and report traffic statistics",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
			initConfig()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-line diagnostics")
	rootCmd.AddCommand(
		parseCmd(),
		reportCmd(),
		analyzeCmd(),
	)
	return rootCmd
}

func setupLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// initConfig loads optional defaults from a .clfstat.yaml in the working
// directory or the home directory. Flags still win over the file.
func initConfig() {
	viper.SetConfigName(".clfstat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}
