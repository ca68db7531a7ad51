// Package config loads viewer configuration files and merges them with
// command-line overrides. Files are flat key/value documents (YAML, JSON or
// TOML, by extension); the result feeds the source factories' FromMap
// constructors, so every key stays a string until the source parses it.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration file at path into a flat string map. An empty
// path returns an empty map.
func Load(path string) (map[string]string, error) {
	out := map[string]string{}
	if path == "" {
		return out, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		out[key] = v.GetString(key)
	}
	return out, nil
}

// Merge applies key=value override strings on top of base, returning base.
// Malformed entries (no '=') are skipped.
func Merge(base map[string]string, overrides []string) map[string]string {
	if base == nil {
		base = map[string]string{}
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		base[parts[0]] = parts[1]
	}
	return base
}
