// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-s string   session storage path
//	-l string   locale (en, ar)
//
// Environment
//
//	API_BASE_URL, REQUEST_TIMEOUT ("15s"), STORAGE_PATH, LOCALE,
//	LOG_LEVEL, LOG_FORMAT, WHATSAPP_PHONE, SHOP_URL
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "15s"
// or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "request_timeout": "15s",
//	  "storage_path": "session.db",
//	  "locale": "ar",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "whatsapp_phone": "970569027059",
//	  "shop_url": "https://shop.example.com",
//	  "pass_through_headers": {"ngrok-skip-browser-warning": "true"}
//	}
package config
