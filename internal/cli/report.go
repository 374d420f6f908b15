package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leetboard/internal/config"
	"github.com/yaklabco/leetboard/internal/logging"
	"github.com/yaklabco/leetboard/internal/ui/pretty"
	"github.com/yaklabco/leetboard/pkg/fsutil"
	"github.com/yaklabco/leetboard/pkg/leaderboard"
	"github.com/yaklabco/leetboard/pkg/render"
	"github.com/yaklabco/leetboard/pkg/statsfile"
)

type reportFlags struct {
	days    int
	format  string
	output  string
	message string
}

func newReportCommand() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report <stats-file>",
		Short: "Render a leaderboard report from a stats file",
		Long:  reportLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.days, "days", 0, "trailing day window shown in the report title")
	cmd.Flags().StringVar(&flags.format, "format", "", "report format: text or html")
	cmd.Flags().StringVar(&flags.output, "output", "", "base filename to write the report to (default: print to stdout)")
	cmd.Flags().StringVar(&flags.message, "message", "", "completion message appended after the table")

	return cmd
}

const reportLongDescription = `Render a leaderboard report from a YAML or JSON stats file.

The stats file holds one record per user with the solved-question counts
by difficulty. Users are ranked by total questions descending; ties keep
the order of the input file.

Examples:
  leetboard report stats.yaml                          # Text report to stdout
  leetboard report stats.yaml --format html            # HTML report to stdout
  leetboard report stats.json --output weekly          # Writes weekly.txt
  leetboard report stats.yaml --format html --output w # Writes w.html
  leetboard report stats.yaml --days 30 --message "New window starts Monday"`

func runReport(cmd *cobra.Command, statsPath string, flags *reportFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Flags override config. Only apply values explicitly provided.
	if cmd.Flags().Changed("days") {
		cfg.Days = flags.days
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}
	if cmd.Flags().Changed("message") {
		cfg.Message = flags.message
	}

	// Config-driven log level; the --debug flag wins.
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("get debug flag: %w", err)
	}
	if !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	stats, err := statsfile.Load(ctx, statsPath)
	if err != nil {
		return err
	}

	format := render.ParseFormat(cfg.Format)
	renderer := render.New(format)

	logger.Debug("rendering report",
		logging.FieldInput, statsPath,
		logging.FieldFormat, format.String(),
		logging.FieldUsers, len(stats),
		logging.FieldWindowDays, cfg.Days,
	)

	content, err := renderer.Render(leaderboard.Report{
		Stats:             stats,
		WindowDays:        cfg.Days,
		CompletionMessage: cfg.Message,
	})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	dest := ""
	if cfg.Output != "" {
		dest = fsutil.EnsureExt(cfg.Output, format.Ext())
		if err := renderer.WriteFile(ctx, cfg.Output, content); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug("report written",
			logging.FieldOutput, dest,
			logging.FieldBytes, len(content),
		)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), content)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errOut))
	fmt.Fprint(errOut, styles.FormatRunSummary(len(stats), cfg.Days, format.String(), dest))

	return nil
}
