package main

import (
	"os"

	"github.com/smartmatch/jobmatcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
