// Init command for the storefront CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize storefront storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it exists
		// with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fatal("init", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fatal("init", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fatal("init", err)
		}

		// Opening the snapshot backend creates the data directory.
		snapshots, err := openSnapshots()
		if err != nil {
			fatal("init", err)
		}
		defer snapshots.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			fatal("init", err)
		}

		fmt.Println("Storefront initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
