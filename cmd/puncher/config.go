package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/punchworks/puncher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning config",
	Long: `Print the built-in default YAML tuning config to stdout.

Save it and pass it back with --config to customize the game:

  puncher config > my-puncher.yaml
  puncher play --config ./my-puncher.yaml

Or place it at ~/.puncher/configs/puncher.yaml to apply it by default.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
