// Package main provides the entry point for the infercast CLI tool.
package main

import (
	"github.com/infercast/infercast/cmd/infercast/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
