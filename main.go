package main

import (
	"os"

	"github.com/jdelgad/bbcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
