package listing

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the settings of a disassembly listing.
type Config struct {
	// BlockWords is the number of instruction words decoded together and
	// cached as one block. Must be a power of two. Default: 16.
	BlockWords int `json:"block_words"`

	// CacheBlocks is the number of decoded blocks kept. Default: 256.
	CacheBlocks int `json:"cache_blocks"`

	// Associativity is the number of ways per cache set. Default: 4.
	Associativity int `json:"associativity"`

	// Aliases selects preferred disassembly aliases. Default: true.
	Aliases bool `json:"aliases"`

	// Fields selects whether encoding fields are recorded. Default: false.
	Fields bool `json:"fields"`

	// MaxLines bounds the number of lines a single request may produce.
	// Default: 65536.
	MaxLines int `json:"max_lines"`
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() *Config {
	return &Config{
		BlockWords:    16,
		CacheBlocks:   256,
		Associativity: 4,
		Aliases:       true,
		Fields:        false,
		MaxLines:      65536,
	}
}

// LoadConfig loads a Config from a JSON file. Missing keys keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse listing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize listing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write listing config file: %w", err)
	}

	return nil
}

// Validate checks that the cache geometry is usable.
func (c *Config) Validate() error {
	if c.BlockWords <= 0 || c.BlockWords&(c.BlockWords-1) != 0 {
		return fmt.Errorf("block_words must be a power of two")
	}
	if c.Associativity <= 0 {
		return fmt.Errorf("associativity must be > 0")
	}
	if c.CacheBlocks <= 0 || c.CacheBlocks%c.Associativity != 0 {
		return fmt.Errorf("cache_blocks must be a positive multiple of associativity")
	}
	if c.MaxLines <= 0 {
		return fmt.Errorf("max_lines must be > 0")
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
