package main

import (
	"os"

	"github.com/arthur-debert/stamp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
