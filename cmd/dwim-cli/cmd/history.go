package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dwim/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetHistory() == nil {
			return fmt.Errorf("history is disabled in the configuration")
		}

		visits, err := commands.NewRecentCommand(GetHistory(), historyLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, v := range visits {
			fmt.Printf("%s  %-8s  %s\n", v.OpenedAt.Format("2006-01-02 15:04"), v.Editor, v.Target.Arg())
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetHistory() == nil {
			return fmt.Errorf("history is disabled in the configuration")
		}

		if err := commands.NewClearHistoryCommand(GetHistory()).Execute(context.Background()); err != nil {
			return err
		}

		fmt.Println("History cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries")

	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
