// Version command for the storefront CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version stamped into the binary.
const Version = "v0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the storefront version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("storefront", Version)
	},
}
