package config

import (
	"encoding/json"
	"os"

	"github.com/portalesuite/portale-client/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay empty and do not override earlier sources.
type JsonConfig struct {
	BaseURL      string `json:"base_url"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No file flag means no JSON is loaded. Read or unmarshal errors panic;
// callers treat a broken config file as a startup failure.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
