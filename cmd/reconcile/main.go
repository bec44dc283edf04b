// reconcile runs one batch match over caller-materialized JSON files and
// prints the outcome for each transaction.
package main

import (
	"fmt"
	"os"

	"github.com/bookkept/matchd/internal/cli"
	"github.com/bookkept/matchd/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseReconcileFlags()
	cfg := config.LoadOrEnvWithPath(flags.ConfigPath)

	if err := cli.RunReconcile(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: %v\n", err)
		os.Exit(1)
	}
}
