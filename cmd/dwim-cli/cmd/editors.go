package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dwim/internal/adapters/editor"
)

var editorsCmd = &cobra.Command{
	Use:   "editors",
	Short: "List editor backends and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range editor.Names() {
			status := "not found"
			if editor.Available(name, "") {
				status = "available"
			}
			marker := " "
			if name == GetEditor().Name() {
				marker = "*"
			}
			fmt.Printf("%s %-8s  %s\n", marker, name, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editorsCmd)
}
