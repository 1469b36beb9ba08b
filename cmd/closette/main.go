// Package main is the entry point for the closette server and CLI.
package main

import (
	"github.com/donaldgifford/closette/cmd/closette/cmd"
)

func main() {
	cmd.Execute()
}
