package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner config",
	Long: `Print the built-in runner config as YAML. Save it to
~/.dinodash/configs/runner.yaml or pass it with --config to tune a run.

Example:
  dinodash config > ~/.dinodash/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
