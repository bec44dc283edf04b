// matchd serves the transaction/attachment matching engine over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/bookkept/matchd/internal/cli"
	"github.com/bookkept/matchd/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseServeFlags()
	cfg := config.LoadOrEnvWithPath(flags.ConfigPath)

	if err := cli.RunServe(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "matchd: %v\n", err)
		os.Exit(1)
	}
}
