package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
)

// configurationApplyCmd represents the configuration apply command
var configurationApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Validate configuration before restarting the server",
	Long: `Validate the current state of the configuration file and environment.

The server reads its configuration once at start, so restart it after a
successful apply. Use --test to validate the configuration file alone,
without checking the secrets the server needs.

Example:
  drivectl configuration apply
  drivectl configuration apply --test`,
	Run: func(cmd *cobra.Command, args []string) {
		testMode, _ := cmd.Flags().GetBool("test")

		if err := applyConfiguration(testMode); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationApplyCmd)
	configurationApplyCmd.Flags().Bool("test", false, "Validate the configuration file only")
}

func applyConfiguration(testMode bool) error {
	fmt.Println("Validating configuration...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if testMode {
		fmt.Println("Configuration is valid.")
		return nil
	}

	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if os.Getenv("DRIVE_TOKEN_SECRET") == "" {
		return fmt.Errorf("DRIVE_TOKEN_SECRET is not set")
	}

	fmt.Println("Configuration is valid.")
	fmt.Println("Restart the server to pick up the changes.")
	return nil
}
