package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after applying the search order:

  1. --config path
  2. ~/.dodger/configs/dodge.yaml
  3. ./configs/dodge.yaml
  4. built-in defaults

The output is a complete config file and can be saved and edited.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
