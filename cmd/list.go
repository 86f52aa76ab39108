package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/gherkin-report/internal/config"
	"github.com/chriserin/gherkin-report/internal/feature"
	"github.com/chriserin/gherkin-report/internal/report"
	"github.com/chriserin/gherkin-report/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List features and scenarios with their tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return RunList(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.Paths, opts.Exclude)
	},
}

func init() {
	listCmd.Flags().StringVar(&excludeFlag, "exclude", config.DefaultExcludeTag, "Tag that excludes a feature or scenario; empty disables filtering")
	rootCmd.AddCommand(listCmd)
}

func RunList(w, stderr io.Writer, args []string, exclude string) error {
	if len(args) == 0 {
		return fmt.Errorf("no feature files given")
	}

	paths, err := report.ExpandPaths(args)
	if err != nil {
		return err
	}

	res, err := report.Generate(paths, report.Config{
		Format:     report.FormatStructured,
		ExcludeTag: feature.NormalizeTag(exclude),
	})
	if err != nil {
		return err
	}
	for _, s := range res.Skipped {
		ui.SkipLine(stderr, s.Path, s.Err)
	}

	// Compute column widths
	locWidth, nameWidth := 0, 0
	for _, f := range res.Features {
		for _, sc := range f.Scenarios {
			if l := len(location(f, sc)); l > locWidth {
				locWidth = l
			}
			if len(sc.Name) > nameWidth {
				nameWidth = len(sc.Name)
			}
		}
	}

	for _, f := range res.Features {
		ui.FeatureRow(w, f.Name, f.Tags.Names())
		for _, sc := range f.Scenarios {
			ui.ScenarioRow(w, location(f, sc), sc.Name, sc.Tags.Names(), locWidth, nameWidth)
		}
	}

	return nil
}

func location(f *feature.Feature, sc feature.Scenario) string {
	return fmt.Sprintf("%s:%d", f.Path, sc.Line)
}
