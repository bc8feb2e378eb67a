package main

import "dwim/cmd/dwim-cli/cmd"

func main() {
	cmd.Execute()
}
