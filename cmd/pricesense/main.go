package main

import (
	"os"

	"github.com/pricesense/backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
