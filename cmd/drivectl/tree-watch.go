package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// treeWatchCmd represents the tree watch command
var treeWatchCmd = &cobra.Command{
	Use:   "watch <records.json>",
	Short: "Re-render a listing every time it is written",
	Long: `Watch a resource listing file and print its forest again when it changes.

Example:
  drivectl tree watch listing.json --select d1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchTree(args[0], renderOptionsFrom(cmd)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch tree: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	treeCmd.AddCommand(treeWatchCmd)
}

func watchTree(filename string, opts renderOptions) error {
	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", filename, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often save through a temporary file and a rename, which
	// replaces the inode a file watch would follow.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch directory of %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for changes\n", filename)
	if err := renderFile(os.Stdout, target, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering tree: %v\n", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return watchLoop(watcher, target, sigChan, func() {
		fmt.Printf("\n[%s] File modified, rendering...\n", time.Now().Format(time.RFC3339))
		if err := renderFile(os.Stdout, target, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering tree: %v\n", err)
		}
	})
}

// watchLoop calls onChange for every write to target, or for target being
// created or renamed into place, until stop fires or the watcher closes.
func watchLoop(watcher *fsnotify.Watcher, target string, stop <-chan os.Signal, onChange func()) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isListingChange(event, target) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-stop:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func isListingChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
