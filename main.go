package main

import (
	"os"

	"github.com/promptdeck/promptdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
