package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mazehunt/mazehunt/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available variants",
	Long:  `List all registered variants with their IDs and titles.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants registered.")
		return nil
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-20s %s\n", "ID", "Title")
	fmt.Println("  " + "----------------------------------------")

	for _, info := range games {
		fmt.Printf("  %-20s %s\n", info.ID, info.Title)
	}

	fmt.Println()
	fmt.Println("Play with: mazehunt play <id>")

	return nil
}
