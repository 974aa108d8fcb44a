package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yukarine/clfstat/pkg/analyze"
	"github.com/yukarine/clfstat/pkg/scan"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze <access.log>",
		Aliases: []string{"analyse"},
		Short:   "Parse an access log and print its statistics in one run",
	}
	config := defaultReportConfig()
	config.InstallFlags(cmd.Flags())
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		entries, err := scan.CollectFile(args[0], false)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return printReport(cmd, config, analyze.Aggregate(entries))
	}
	return cmd
}
