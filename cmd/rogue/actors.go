package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rogue/internal/registry"
)

var actorsCmd = &cobra.Command{
	Use:   "actors",
	Short: "List spawnable actor types",
	Long:  `Shows every actor type registered with the spawner.`,
	Args:  cobra.NoArgs,
	Run:   runActors,
}

func runActors(_ *cobra.Command, _ []string) {
	actors := registry.List()

	if len(actors) == 0 {
		fmt.Println("No actors available.")
		return
	}

	fmt.Println("Spawnable actors:")
	fmt.Println()

	fmt.Printf("  %-4s  %s\n", "Type", "Name")
	fmt.Printf("  %-4s  %s\n", "----", "----")

	for _, a := range actors {
		fmt.Printf("  %-4d  %s\n", int(a.Type), a.Name)
	}
}
