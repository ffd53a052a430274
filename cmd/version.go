package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohouse/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohouse",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gohouse v%s\n", version.Version)
		fmt.Println("Frame House Geometry Calculator")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
