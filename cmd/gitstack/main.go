package main

import (
	"fmt"
	"os"

	"github.com/dagjomar/gitstack/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gitstack: %v\n", err)
		os.Exit(1)
	}
}
