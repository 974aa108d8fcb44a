package main

import (
	"os"

	"github.com/yukarine/clfstat/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
