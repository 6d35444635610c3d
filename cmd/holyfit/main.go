package main

import (
	"os"

	"github.com/holyfit/holyfit-api/cmd/holyfit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
