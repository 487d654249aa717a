package main

import (
	"os"

	"github.com/manav03panchal/timeclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
