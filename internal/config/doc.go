// Package config provides 12-factor configuration management for the gateway.
//
// Configuration is loaded from environment variables with sensible defaults.
// The filesystem access scope (allowed roots, allowed extensions, ignore
// patterns) can additionally come from an allow-list file in JSON, YAML, or
// TOML; explicit CLI flags and environment variables take precedence over the
// file. A missing or unreadable allow-list file degrades to empty allow-lists
// instead of failing startup.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Gateway: allowed roots, allowed extensions, ignore patterns, file path
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//
// Environment Variables:
//   - PORT, HOST
//   - GATEWAY_CONFIG, GATEWAY_ROOTS, GATEWAY_EXTENSIONS, GATEWAY_IGNORE
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
