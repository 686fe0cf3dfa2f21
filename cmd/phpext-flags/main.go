// Command phpext-flags prints the compiler flags needed to build a native
// PHP extension against the installed runtime.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "phpext",
	})

	if err := newRootCmd(os.Stdout, logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("build flag discovery failed", "err", err)
		os.Exit(1)
	}
}
