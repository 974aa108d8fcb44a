package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yukarine/clfstat/pkg/dump"
	"github.com/yukarine/clfstat/pkg/scan"
)

type parseConfig struct {
	Output     string
	NoProgress bool
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		Output: "log.json",
	}
}

func (c *parseConfig) InstallFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, "output-json", "o", c.Output, "Output path of the JSON dump")
	flags.BoolVar(&c.NoProgress, "no-progress", c.NoProgress, "Do not draw a progress bar")
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <access.log>",
		Short: "Convert an Apache combined access log into a JSON dump",
		Args:  cobra.ExactArgs(1),
	}
	config := defaultParseConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		entries, err := scan.CollectFile(args[0], !config.NoProgress)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if err := dump.WriteFile(config.Output, entries); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.Output, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to file %s\n", len(entries), config.Output)
		return nil
	}
	return cmd
}
