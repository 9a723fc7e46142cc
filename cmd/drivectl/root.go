package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drivectl",
	Short: "Drive console server and tooling",
	Long: `Run the drive console API server, manage its database, and work with
resource listings and permission sets from the command line.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
