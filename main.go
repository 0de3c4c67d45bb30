package main

import (
	"os"

	"github.com/mbriand/finquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
