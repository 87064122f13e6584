package main

import (
	"os"

	"chartrisk/cmd/chartrisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
