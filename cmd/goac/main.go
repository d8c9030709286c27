// Command goac trains and evaluates linear actor-critic agents
package main

import (
	"log"

	"github.com/spf13/cobra"

	// Register agent configurations
	_ "github.com/samuelfneumann/goactorcritic/agent/actorcritic"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "goac",
	Short:         "Train and evaluate linear actor-critic agents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("goac: ")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
