package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config specifies the file format of config files.
type Config struct {
	ServerAddr  string `yaml:"addr"`
	MetricsAddr string `yaml:"metrics-addr"`

	// DatabaseFile is the LevelDB directory the frontier is persisted in.
	// When empty, state is kept in memory only.
	DatabaseFile string `yaml:"database"`

	HomeRedirect string `yaml:"home"`
}

func ReadConfig(filename string) (*Config, error) {
	// Read from file and parse.
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var parsed Config
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	// Check that all required fields are populated.
	if parsed.ServerAddr == "" {
		return nil, fmt.Errorf("field not provided: addr")
	}
	return &parsed, nil
}
