package main

import (
	"os"

	"github.com/iburimskiy/spirograph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
