// Package config loads runtime configuration for the carpool CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with CARPOOL_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://localhost:3000
//	-t int      per-request timeout (seconds)
//	-d string   path of the local session database
//	-l string   log level: debug, info, warn or error
//
// Environment
//
//	CARPOOL_API_BASE_URL, CARPOOL_REQUEST_TIMEOUT ("10s"),
//	CARPOOL_STORAGE_PATH, CARPOOL_LOG_LEVEL
//
// # JSON schema
//
// Timeouts use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "storage_path": "carpoolea.db",
//	  "log_level": "info"
//	}
//
// All parse stages panic on malformed input; configuration errors are fatal
// at startup.
package config
