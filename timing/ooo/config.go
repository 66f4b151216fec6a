package ooo

import (
	"encoding/json"
	"fmt"
	"os"
)

// CoreConfig holds the structural parameters of a Core: buffer depths and
// the I-memory port's fixed latency when the caller doesn't supply its
// own port.
type CoreConfig struct {
	// RobSize is the reorder buffer depth. Default: 32.
	RobSize int `json:"rob_size"`

	// RsSize is each reservation station class's depth. Default: 16.
	RsSize int `json:"rs_size"`

	// IMemLatency is the fixed per-request latency, in ticks, of the
	// default SimplePort the Core builds when no Port is supplied via
	// WithIMemPort. Default: 0 (response ready the tick after the
	// request is sent).
	IMemLatency uint64 `json:"imem_latency"`
}

// DefaultCoreConfig returns a 32-entry ROB, 16-entry reservation stations
// per class, and a zero-latency instruction memory.
func DefaultCoreConfig() *CoreConfig {
	return &CoreConfig{
		RobSize:     DefaultROBSize,
		RsSize:      DefaultRSSize,
		IMemLatency: 0,
	}
}

// LoadConfig loads a CoreConfig from a JSON file, defaulting any field the
// file omits.
func LoadConfig(path string) (*CoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read core config file: %w", err)
	}

	config := DefaultCoreConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse core config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a CoreConfig to a JSON file.
func (c *CoreConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize core config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write core config file: %w", err)
	}

	return nil
}

// Validate checks that every buffer depth is usable.
func (c *CoreConfig) Validate() error {
	if c.RobSize <= 0 {
		return fmt.Errorf("rob_size must be > 0")
	}
	if c.RsSize <= 0 {
		return fmt.Errorf("rs_size must be > 0")
	}
	return nil
}
