// main is the entry point for the courtside CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hoopworks/courtside/cmd"
	"github.com/hoopworks/courtside/internal/iocache"
)

func main() {
	// Wire the persistence manager before any command runs. Stores are
	// opened lazily in command setup and closed once on exit.
	cmd.SetStoreManager(iocache.Manager)
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
