package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sentimeter/internal/flagx"
	"github.com/dmitrijs2005/sentimeter/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from a zero value so a partial file only
// overrides what it names.
type JsonConfig struct {
	Endpoint       *string         `json:"endpoint"`
	CredentialPath *string         `json:"credential_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	HistoryPath    *string         `json:"history_path"`
	HistoryLimit   *int            `json:"history_limit"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args, if any.
// Read or unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Endpoint != nil {
		cfg.Endpoint = *jc.Endpoint
	}
	if jc.CredentialPath != nil {
		cfg.CredentialPath = *jc.CredentialPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HistoryPath != nil {
		cfg.HistoryPath = *jc.HistoryPath
	}
	if jc.HistoryLimit != nil {
		cfg.HistoryLimit = *jc.HistoryLimit
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
