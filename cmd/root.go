package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chriserin/gherkin-report/internal/config"
	"github.com/chriserin/gherkin-report/internal/feature"
	"github.com/chriserin/gherkin-report/internal/logging"
	"github.com/chriserin/gherkin-report/internal/report"
	"github.com/chriserin/gherkin-report/internal/ui"
)

const version = "0.1.0"

var (
	formatFlag      string
	excludeFlag     string
	destinationFlag string
	configFlag      string
	logLevelFlag    string
	logFormatFlag   string
)

var rootCmd = &cobra.Command{
	Use:     "gherkin-report [flags] <files...>",
	Short:   "Render a report from Gherkin feature files",
	Example: "  gherkin-report --format=markdown --exclude=excludeTag features/**/*.feature",
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		if len(opts.Paths) == 0 {
			return cmd.Help()
		}
		return RunReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&formatFlag, "format", config.DefaultFormat, "Output format: markdown, word, html or raw")
	rootCmd.Flags().StringVar(&excludeFlag, "exclude", config.DefaultExcludeTag, "Tag that excludes a feature or scenario; empty disables filtering")
	rootCmd.Flags().StringVar(&destinationFlag, "destination", "", "File to write the report to (required for word)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: text or json")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ReportOptions is the resolved input of one report run.
type ReportOptions struct {
	Paths       []string
	Format      string
	Exclude     string
	Destination string
	LogLevel    string
	LogFormat   string
}

// resolveOptions layers flags the user set over the config file and defaults.
// Paths from the config file are used only when no arguments are given.
func resolveOptions(cmd *cobra.Command, args []string) (ReportOptions, error) {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return ReportOptions{}, err
	}
	cfg := config.Merge(loaded)

	opts := ReportOptions{
		Paths:       args,
		Format:      cfg.Format,
		Exclude:     cfg.ExcludeTag(),
		Destination: cfg.Destination,
		LogLevel:    cfg.LogLevel,
		LogFormat:   cfg.LogFormat,
	}
	if len(args) == 0 && loaded != nil {
		opts.Paths = cfg.Paths
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format = formatFlag
	}
	if flags.Changed("exclude") {
		opts.Exclude = excludeFlag
	}
	if flags.Changed("destination") {
		opts.Destination = destinationFlag
	}
	if flags.Changed("log-level") {
		opts.LogLevel = logLevelFlag
	}
	if flags.Changed("log-format") {
		opts.LogFormat = logFormatFlag
	}
	return opts, nil
}

func RunReport(stdout, stderr io.Writer, opts ReportOptions) error {
	cfg := report.Config{
		Format:      report.ParseFormat(opts.Format),
		ExcludeTag:  feature.NormalizeTag(opts.Exclude),
		Destination: opts.Destination,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("missing --destination: %w", err)
	}

	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(opts.LogFormat)
	if err != nil {
		return err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = format
	logCfg.Output = stderr
	log := logging.New(logCfg)

	paths, err := report.ExpandPaths(opts.Paths)
	if err != nil {
		return err
	}

	res, err := report.Generate(paths, cfg, report.WithLogger(log))
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		ui.SkipLine(stderr, s.Path, s.Err)
	}

	switch res.Kind {
	case report.KindText:
		fmt.Fprint(stdout, res.Text)
	case report.KindFile:
		if err := res.File.Wait(); err != nil {
			return err
		}
		ui.WroteLine(stdout, res.File.Path())
	case report.KindFeatures:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(res.Features); err != nil {
			return fmt.Errorf("encoding features: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding features: %w", err)
		}
	}

	if len(res.Skipped) > 0 {
		ui.SummaryLine(stderr, res.Count, len(res.Skipped))
	}
	return nil
}
