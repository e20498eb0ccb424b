package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/wcfinals/internal/probe"
	"github.com/okian/wcfinals/pkg/logger"
)

// cli holds flag values shared by the subcommands.
type cli struct {
	baseURL     string
	timeout     time.Duration
	concurrency int
	verbose     bool
	logFormat   string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "wcprobe",
		Short:         "wcprobe checks a running World Cup finals dashboard.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", logger.FormatText, "Log format (text or json)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log every check")

	rootCmd.AddCommand(c.newCheckCmd())
	return rootCmd
}

func (c *cli) newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify layout, year info, country info and the map against the finals table.",
		Args:  cobra.NoArgs,
		RunE:  c.runCheck,
	}
	checkCmd.Flags().StringVar(&c.baseURL, "url", probe.DefaultBaseURL, "Base URL of the dashboard")
	checkCmd.Flags().DurationVar(&c.timeout, "timeout", probe.DefaultTimeout, "HTTP request timeout")
	checkCmd.Flags().IntVar(&c.concurrency, "concurrency", probe.DefaultConcurrency, "Parallel requests per phase")
	return checkCmd
}

func (c *cli) runCheck(cmd *cobra.Command, _ []string) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr(), c.logFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	if err := logger.SetLevelString(level); err != nil {
		return err
	}

	report, err := probe.Run(cmd.Context(), probe.Config{
		BaseURL:     c.baseURL,
		Timeout:     c.timeout,
		Concurrency: c.concurrency,
		Logger:      logger.Named("wcprobe"),
	})
	if report != nil {
		out := cmd.OutOrStdout()
		for _, f := range report.Failures {
			fmt.Fprintf(out, "FAIL %s\n", f)
		}
		fmt.Fprintf(out, "%d checks, %d failures in %s\n", report.Checks, len(report.Failures), report.Duration.Round(time.Millisecond))
	}
	return err
}
