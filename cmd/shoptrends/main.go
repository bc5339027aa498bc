// Package main provides the CLI for shoptrends.
package main

import (
	"os"

	"github.com/leapstack-labs/shoptrends/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
