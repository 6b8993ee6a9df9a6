// Command linkgest extracts unique URLs from a document into a sorted text file.
package main

import (
	"os"

	"github.com/dgallion1/linkgest/internal/config"
)

func main() {
	if err := newRootCommand(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}
