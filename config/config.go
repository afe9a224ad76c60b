package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Commit  CommitConfig `json:"commit"`
	Window  WindowConfig `json:"window"`
	Skip    SkipConfig   `json:"skip"`
	Weights []int        `json:"weights"`
	Filters FilterConfig `json:"filters"`
}

// CommitConfig holds what every generated commit says.
type CommitConfig struct {
	Message string `json:"message"` // Default: "update"
	Author  string `json:"author"`  // "Name <email>"; empty means the repository's configured identity
}

// WindowConfig holds the daily working window and how far back to start.
type WindowConfig struct {
	Start    string  `json:"start"`    // Default: "09:00"
	End      string  `json:"end"`      // Default: "17:00"
	YearsAgo float64 `json:"yearsAgo"` // Default: 1
}

// SkipConfig controls which dates produce no commits.
type SkipConfig struct {
	Weekends bool     `json:"weekends"` // Default: true
	Dates    []string `json:"dates"`    // Explicit YYYY-MM-DD dates to skip
}

// FilterConfig restricts which staged paths appear in the generated snapshot.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Commit: CommitConfig{
			Message: "update",
		},
		Window: WindowConfig{
			Start:    "09:00",
			End:      "17:00",
			YearsAgo: 1,
		},
		Skip: SkipConfig{
			Weekends: true,
		},
		Weights: []int{3, 4, 2, 2, 2, 1, 1, 1, 1, 2, 2, 2, 4, 3},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".greenbois.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".greenbois.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".greenbois.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
