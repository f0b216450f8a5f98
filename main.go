package main

import (
	"os"

	"github.com/jfuginay/courseforge-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
