// main is the entry point for the stackdeck CLI.
package main

import (
	"stackdeck/cmd"
	"stackdeck/internal/contract"
	"stackdeck/internal/sessionstore"
)

func main() {
	err := cmd.Execute()
	sessionstore.CloseStore()
	if err != nil {
		contract.LogFatal("command failed", err)
	}
}
