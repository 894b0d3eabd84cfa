package main

import (
	"os"

	"newpunch-journalist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
