package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jus1d/rifmuj/lookup"
	"github.com/jus1d/rifmuj/store"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Draw a random word and show its rhymes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRandom()
	},
}

func runRandom() error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", dbPath, err)
	}
	defer st.Close()

	result, err := lookup.LookupRandom(st)
	if err != nil {
		return fmt.Errorf("random: %w", err)
	}
	printResult(result)
	return nil
}
