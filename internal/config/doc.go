// Package config handles loading and parsing showroom configuration files.
//
// # Overview
//
// This package reads showroom's TOML configuration to discover the shared
// data directory, display currency, and admin credentials. Every field is
// optional; a missing file or missing field falls back to a default.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/showroom/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/showroom/config.toml
//   - Data directory: ~/.local/share/showroom
//   - Currency symbol: ₹
//   - Admin username: Admin@123
//   - Admin password: 237007
//   - Log directory: <data_dir>/logs
//
// # TOML Format
//
// Example config.toml:
//
//	data_dir = "~/.local/share/showroom"
//	currency = "₹"
//
//	[admin]
//	username = "Admin@123"
//	password = "237007"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows showroom to work out-of-the-box without configuration.
//
// # Design Philosophy
//
// The admin credentials here are a per-installation gate for a local tool,
// not an authentication system; they are compared verbatim at login. The
// config package is read-only and stateless - it loads configuration once
// at startup and returns an immutable Config struct.
package config
