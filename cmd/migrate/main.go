package main

import (
	"fmt"
	"os"

	"github.com/kapu/namevibes-bot/internal/cli"
)

func main() {
	cmd := cli.NewMigrateCommand()
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
