// main is the entry point for the platefit CLI.
package main

import (
	"github.com/platefit/platefit/cmd"
	"github.com/platefit/platefit/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
