package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/permission"
)

// permissionsCmd represents the permissions command
var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Work with permission sets",
	Long:  `Apply the permission toggle rule used by member and group editors.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'permissions' requires a subcommand (toggle)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// permissionsToggleCmd represents the permissions toggle command
var permissionsToggleCmd = &cobra.Command{
	Use:   "toggle <permission>",
	Short: "Print the permission set after checking or unchecking one permission",
	Long: `Print the permission set after checking or unchecking one permission.

Checking FULL_ACCESS grants the whole catalog and unchecking it clears the
set. Unchecking any other permission also drops FULL_ACCESS, and holding
every other permission implies FULL_ACCESS.

Example:
  drivectl permissions toggle READ --checked
  drivectl permissions toggle SHARE --current FULL_ACCESS,READ,WRITE`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		current, _ := cmd.Flags().GetStringSlice("current")
		checked, _ := cmd.Flags().GetBool("checked")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		if err := togglePermission(os.Stdout, cfg.Catalog(), current, args[0], checked, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to toggle permission: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.AddCommand(permissionsToggleCmd)
	permissionsToggleCmd.Flags().StringSlice("current", nil, "permissions currently held")
	permissionsToggleCmd.Flags().Bool("checked", false, "check the permission instead of unchecking it")
	permissionsToggleCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func togglePermission(w io.Writer, catalog, current []string, name string, checked bool, output string) error {
	if err := permission.Validate(append([]string{name}, current...), catalog); err != nil {
		return err
	}

	next := permission.ApplyToggle(permission.NewSet(current...), name, checked, catalog)

	if output == "json" {
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, strings.Join(next.Names(), ","))
	return nil
}
