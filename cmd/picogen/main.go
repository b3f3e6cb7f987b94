package main

import (
	"os"

	"github.com/picotools/picogen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
