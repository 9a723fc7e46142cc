package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the permission catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'catalog' requires a subcommand (show)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// catalogShowCmd represents the catalog show command
var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List grantable permissions by category",
	Long: `List grantable permissions by category, including extra_permissions
from the configuration.

Example:
  drivectl catalog show
  drivectl catalog show -o json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		if err := showCatalog(os.Stdout, cfg, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show catalog: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showCatalog(w io.Writer, cfg *config.DriveConfig, output string) error {
	categories := cfg.Categories()

	if output == "json" {
		data, err := json.MarshalIndent(categories, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	for _, c := range categories {
		fmt.Fprintln(w, c.Name)
		for _, name := range c.Permissions {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	return nil
}
