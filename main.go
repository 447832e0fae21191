package main

import (
	"os"

	"github.com/shotframe/shotframe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
