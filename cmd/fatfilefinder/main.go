package main

import (
	"fmt"
	"os"

	"github.com/harrison/fatfilefinder/internal/cmd"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
