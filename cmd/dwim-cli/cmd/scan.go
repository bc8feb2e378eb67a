package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"dwim/internal/application/commands"
)

var (
	scanClipboard bool
	scanFile      string
	scanList      bool
	scanMustExist bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract file:line targets from terminal text and open one",
	Long: `Scan text for file:line references and open the first one found.

The text is read from stdin by default, from the clipboard with
--clipboard, or from a file with --file. With --list the candidates
are printed instead of opened.

Examples:
  make 2>&1 | dwim-cli scan
  dwim-cli scan --clipboard
  dwim-cli scan --file build.log --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readScanInput()
		if err != nil {
			return err
		}

		cwd, _ := os.Getwd()
		targets, err := commands.NewScanCommand(text, cwd, scanMustExist).Execute(context.Background())
		if err != nil {
			return err
		}

		if scanList {
			for _, t := range targets {
				fmt.Println(t.Arg())
			}
			return nil
		}

		open := commands.NewOpenCommand(GetEditor(), GetHistory(), targets[0])
		result, err := open.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func readScanInput() (string, error) {
	switch {
	case scanClipboard:
		return clipboard.ReadAll()
	case scanFile != "":
		data, err := os.ReadFile(scanFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func init() {
	scanCmd.Flags().BoolVar(&scanClipboard, "clipboard", false, "read text from the clipboard")
	scanCmd.Flags().StringVar(&scanFile, "file", "", "read text from a file")
	scanCmd.Flags().BoolVar(&scanList, "list", false, "print candidates instead of opening")
	scanCmd.Flags().BoolVar(&scanMustExist, "must-exist", false, "keep only targets whose file exists")

	rootCmd.AddCommand(scanCmd)
}
