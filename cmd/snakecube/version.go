// Version command for the snakecube CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/pkg/snakecube"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the snakecube version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("snakecube", snakecube.Version)
	},
}
