package main

import (
	"os"

	"github.com/sprintdeck/sprintdeck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
