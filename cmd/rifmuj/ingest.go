package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jus1d/rifmuj/dict"
	"github.com/jus1d/rifmuj/internal/config"
	"github.com/jus1d/rifmuj/store"
)

var ingestChunkSize int

var ingestCmd = &cobra.Command{
	Use:   "ingest <source-file>",
	Short: "Import a Windows-1251 dictionary file into the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest(args[0])
	},
}

func init() {
	ingestCmd.Flags().IntVar(&ingestChunkSize, "chunk-size", 0, "batch size for store writes (0 = use the configured default)")
}

func runIngest(path string) error {
	cfg, err := config.Default()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", dbPath, err)
	}
	defer st.Close()

	start := time.Now()
	words, errc := dict.Ingest(f, cfg, ingestChunkSize)

	var total int
	for batch := range words {
		if err := st.Put(batch); err != nil {
			return fmt.Errorf("write batch: %w", err)
		}
		total += len(batch)
		log.Info().Int("written", total).Msg("ingest progress")
	}
	if err := <-errc; err != nil {
		return fmt.Errorf("ingest %s: %w", path, err)
	}

	log.Info().
		Int("words", total).
		Dur("elapsed", time.Since(start)).
		Msg("ingest complete")
	return nil
}
