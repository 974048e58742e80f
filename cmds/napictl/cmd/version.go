package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set at build time
var Commit string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get latest build commit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Commit)
	},
}
