package main

import (
	"os"

	"github.com/IanSimon23/doccheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
