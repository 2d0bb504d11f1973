package main

import (
	"os"

	"lintfold/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
