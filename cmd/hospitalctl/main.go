package main

import (
	"os"

	"github.com/SanteonNL/occupancy/cmd/hospitalctl/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
