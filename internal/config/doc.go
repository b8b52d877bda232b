// Package config loads runtime configuration for the portale client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables PORTALE_API_URL and PORTALE_DB.
//  4. Command-line flags -u and -d, which override everything else.
//
// # JSON schema
//
//	{
//	  "base_url": "https://backend.example.it/api",
//	  "database_path": "portale.db"
//	}
//
// Exactly one value wins per field; sources are overlaid, never merged.
package config
