package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dkorolev/tiltmaze/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in maze configuration to stdout. Redirect it to
~/.tiltmaze/configs/maze.yaml (picked up automatically) or pass an
edited copy with --config.

Example:
  tiltmaze config > ~/.tiltmaze/configs/maze.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	//nolint:errcheck // Writing to stdout
	os.Stdout.Write(config.GetDefaultYAML())
}
