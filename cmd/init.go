package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/gherkin-report/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// features/ directory
	_, err := os.Stat("features")
	featuresExist := err == nil
	if err := os.MkdirAll("features", 0o755); err != nil {
		return fmt.Errorf("creating features directory: %w", err)
	}
	if featuresExist {
		fmt.Fprintln(w, "features/ already exists")
	} else {
		fmt.Fprintln(w, "features/ created")
	}

	// config file
	if _, err := os.Stat(config.DefaultFile); err == nil {
		fmt.Fprintf(w, "%s already exists\n", config.DefaultFile)
		return nil
	}
	if err := config.Save(config.DefaultFile, config.Default()); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultFile, err)
	}
	fmt.Fprintf(w, "%s created\n", config.DefaultFile)

	return nil
}
