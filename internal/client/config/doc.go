// Package config loads runtime configuration for the sentimeter CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables; a .env file in the working directory is loaded
//     first when present and never overrides variables already set.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-e string   classification endpoint URL
//	-k string   credential file path
//	-t int      request timeout (seconds)
//	-H string   history database path (empty disables history)
//	-n int      number of analyses kept in history (0 = unlimited)
//	-l string   log level: debug, info, warn, error
//	-r int      print the N most recent analyses and exit
//
// Environment
//
//	SENTIMETER_ENDPOINT, SENTIMETER_CREDENTIAL_PATH, SENTIMETER_REQUEST_TIMEOUT
//	(a Go duration such as "45s"), SENTIMETER_HISTORY_PATH,
//	SENTIMETER_HISTORY_LIMIT, SENTIMETER_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "endpoint": "https://...",
//	  "credential_path": "./saved_key.txt",
//	  "request_timeout": "30s",
//	  "history_path": "history.db",
//	  "history_limit": 1000,
//	  "log_level": "info"
//	}
//
// Malformed values in any source cause a panic: a misconfigured client
// should not start.
package config
