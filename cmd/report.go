package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yukarine/clfstat/pkg/analyze"
	"github.com/yukarine/clfstat/pkg/dump"
	"github.com/yukarine/clfstat/pkg/report"
)

type reportConfig struct {
	TopN      int
	NoColor   bool
	NoPercent bool
}

func defaultReportConfig() reportConfig {
	return reportConfig{
		TopN: 10,
	}
}

func (c *reportConfig) InstallFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&c.TopN, "top", "n", c.TopN, "Number of entries in ranked lists (0 for all)")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output")
	flags.BoolVar(&c.NoPercent, "no-percent", c.NoPercent, "Hide percentages in bar graphs")
}

// applyFileDefaults lets a config file override built-in defaults without
// shadowing flags the user set explicitly.
func (c *reportConfig) applyFileDefaults(flags *pflag.FlagSet) {
	if !flags.Changed("top") && viper.IsSet("top") {
		c.TopN = viper.GetInt("top")
	}
	if !flags.Changed("no-color") && viper.IsSet("no-color") {
		c.NoColor = viper.GetBool("no-color")
	}
	if !flags.Changed("no-percent") && viper.IsSet("no-percent") {
		c.NoPercent = viper.GetBool("no-percent")
	}
}

func (c reportConfig) style() report.Style {
	if c.NoColor {
		return report.PlainStyle()
	}
	return report.DefaultStyle()
}

func printReport(cmd *cobra.Command, config reportConfig, stats analyze.Stats) error {
	config.applyFileDefaults(cmd.Flags())
	return report.Print(cmd.OutOrStdout(), stats, config.style(), config.TopN, !config.NoPercent)
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <log.json>",
		Short: "Print aggregated statistics from a JSON dump",
		Args:  cobra.ExactArgs(1),
	}
	config := defaultReportConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		entries, err := dump.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return printReport(cmd, config, analyze.Aggregate(entries))
	}
	return cmd
}
