package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available bots",
	Long:  `Shows a list of all bots registered in this binary.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	bots := registry.List()

	if len(bots) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println("Available bots:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range bots {
		maxIDLen = max(maxIDLen, len(b.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, b := range bots {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Name)
	}

	fmt.Println()
	fmt.Println("Run 'battlebots play <bot1> <bot2>' to watch a match.")
}
