package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dwim/internal/application/commands"
	"dwim/internal/domain"
)

var openCmd = &cobra.Command{
	Use:   "open <path:line> | open <path> <line>",
	Short: "Open a file at a line in the configured editor",
	Long: `Open a file at a line in the configured editor.

Examples:
  dwim-cli open /srv/app/models.py:80
  dwim-cli open main.go 42
  dwim-cli open README.md`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseOpenArgs(args)
		if err != nil {
			return err
		}

		open := commands.NewOpenCommand(GetEditor(), GetHistory(), target)
		result, err := open.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func parseOpenArgs(args []string) (domain.Target, error) {
	if len(args) == 2 {
		line, err := strconv.Atoi(args[1])
		if err != nil {
			return domain.Target{}, fmt.Errorf("invalid line number %q", args[1])
		}
		return domain.Target{Path: args[0], Line: line}, nil
	}
	return domain.ParseTarget(args[0])
}

func init() {
	rootCmd.AddCommand(openCmd)
}
