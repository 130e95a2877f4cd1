// Package config loads runtime configuration for the ArtSpace CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a dotenv file (-e / -env, or
//     ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Environment variables
//
//	ARTSPACE_SERVER_URL        base URL of the API
//	ARTSPACE_REQUEST_TIMEOUT   duration, e.g. "15s"
//	ARTSPACE_SESSION_DB        session database path
//	ARTSPACE_LOG_LEVEL         debug | info | warn | error
//	ARTSPACE_LOG_FORMAT        text | json | logrus
//
// Supported flags
//
//	-a string   base URL of the API
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "request_timeout": "30s",
//	  "session_db": "artspace_session.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Empty JSON fields leave the previous value untouched.
package config
