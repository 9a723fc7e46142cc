package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Work with resource listings",
	Long:  `Build and display the folder forest of a resource listing file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'tree' requires a subcommand (render, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.PersistentFlags().StringSlice("select", nil, "ids to check, in order (folders cascade)")
	treeCmd.PersistentFlags().Bool("expand-all", false, "open every folder")
}

func renderOptionsFrom(cmd *cobra.Command) renderOptions {
	selectIDs, _ := cmd.Flags().GetStringSlice("select")
	expandAll, _ := cmd.Flags().GetBool("expand-all")
	return renderOptions{selectIDs: selectIDs, expandAll: expandAll}
}
