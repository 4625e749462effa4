// Command rifmuj is a CLI front end for the rhyme dictionary: import a
// source dictionary file into a store, then look up words or draw random
// ones against it.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jus1d/rifmuj/internal/logging"
)

var (
	dbPath   string
	logLevel string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rifmuj",
	Short: "A Russian rhyming dictionary",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("bad --log-level %q: %w", logLevel, err)
		}
		log = logging.New(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "rifmuj.db", "path to the rhyme store database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(randomCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
