package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/jus1d/rifmuj/lookup"
	"github.com/jus1d/rifmuj/store"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Find rhymes for a word, accented or not",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(args[0])
	},
}

func runLookup(query string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", dbPath, err)
	}
	defer st.Close()

	result, err := lookup.LookupWord(st, query)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", query, err)
	}
	printResult(result)
	return nil
}

// printResult renders a lookup.Result the way a terminal dictionary tool
// would: the resolved headword in bold, stress variants as a numbered
// choice, rhymes grouped by lemma with the closest group first.
func printResult(result lookup.Result) {
	switch r := result.(type) {
	case lookup.Variants:
		color.Yellow.Printf("%q is ambiguous, pick a stress:\n", r.InputPretty)
		for i, v := range r.Variants {
			fmt.Printf("  %d. %s\n", i+1, v)
		}
	case lookup.Rhymes:
		color.Bold.Printf("%s\n", r.InputPretty)
		if len(r.Groups) == 0 {
			color.Gray.Println("  (no rhymes found)")
			return
		}
		for _, group := range r.Groups {
			line := ""
			for i, c := range group {
				if i > 0 {
					line += ", "
				}
				line += c.Text
			}
			color.Green.Printf("  %s\n", line)
		}
	}
}
