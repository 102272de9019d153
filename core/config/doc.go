// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides TOML and YAML configuration loading
//              with dot-notation access, defaults, and environment
//              variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

/*
Package config provides configuration management for cmdkit binaries.

Configuration is read once at startup from a TOML or YAML file (the
format is detected from the extension), merged over caller-supplied
defaults, and accessed through typed getters with dot-notation keys:

	cfg, err := config.Load("cmdsh.toml")
	if err != nil {
		// ...
	}
	level := cfg.GetString("log.level", "info")
	banner := cfg.GetBool("shell.banner", true)

When an environment prefix is configured, environment variables override
file values: with prefix "CMDSH", the variable CMDSH_LOG_LEVEL takes
precedence over the log.level key. This keeps containerized deployments
configurable without editing files.

There is no file watching: an interactive shell reads its configuration
once and holds it for the session.
*/
package config
