// Package config holds the embedded, compile-time configuration shared by
// the ingester and the CLI: the grammar-abbreviation table used to turn a
// dictionary source file's raw tags into the short codes carried in
// record.Word.Gram, and the ingest tunables.
package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"
)

//go:embed grammar.yaml
var grammarYAML []byte

// Config is the parsed contents of grammar.yaml.
type Config struct {
	Abbreviations map[string]string `yaml:"abbreviations"`
	Ingest        IngestConfig      `yaml:"ingest"`
}

// IngestConfig holds the ingester's tunables.
type IngestConfig struct {
	ChunkSize int `yaml:"chunk_size"`
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
	defaultErr  error
)

// Default returns the shared Config parsed from the embedded grammar.yaml.
// Parsed once and cached; safe for concurrent use.
func Default() (*Config, error) {
	defaultOnce.Do(func() {
		var c Config
		if err := yaml.Unmarshal(grammarYAML, &c); err != nil {
			defaultErr = fmt.Errorf("config: parse embedded grammar.yaml: %w", err)
			return
		}
		if c.Ingest.ChunkSize <= 0 {
			c.Ingest.ChunkSize = 100_000
		}
		defaultCfg = &c
	})
	return defaultCfg, defaultErr
}

// Abbreviate looks up a single raw grammar token in the abbreviation table.
// It returns ok=false for a token the table doesn't recognize; callers drop
// such tokens rather than carry them through unresolved, matching the
// source dictionary's own handling of unrecognized tags.
func (c *Config) Abbreviate(token string) (string, bool) {
	code, ok := c.Abbreviations[token]
	return code, ok
}
