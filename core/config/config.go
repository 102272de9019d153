// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and
//              accessing configuration data from TOML and YAML files with
//              environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ckerror "github.com/msto63/cmdkit/core/error"
	"github.com/msto63/cmdkit/utils/stringx"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota

	// FormatYAML represents YAML format.
	FormatYAML

	// FormatAuto auto-detects format from the file extension.
	FormatAuto
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration.
type LoadOptions struct {
	// Format selects the file format (default: auto-detect by extension).
	Format Format

	// EnvPrefix enables environment overrides: with prefix "CMDSH", the
	// key "log.level" is overridden by CMDSH_LOG_LEVEL when set.
	EnvPrefix string

	// Defaults provides fallback values for keys absent from the file.
	Defaults map[string]interface{}
}

// Load loads configuration from a file with default options.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, ckerror.New("config file path cannot be empty").
			WithCode(ckerror.CodeValidation)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, ckerror.Newf("config file not found: %s", filePath).
			WithCode(ckerror.CodeNotFound)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, ckerror.Wrap(err, "failed to read config file").
			WithCode(ckerror.CodeIO)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, err
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with the given format.
// FormatAuto defaults to TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// NewEmpty returns an empty configuration. All lookups fall through to the
// provided defaults and environment overrides; useful when a binary runs
// without a config file.
func NewEmpty(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// detectFormat determines the configuration format from the file extension.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format.
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, ckerror.Wrap(err, "TOML parse error").
				WithCode(ckerror.CodeValidation)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, ckerror.Wrap(err, "YAML parse error").
				WithCode(ckerror.CodeValidation)
		}
	default:
		return nil, ckerror.Newf("unsupported config format: %s", format).
			WithCode(ckerror.CodeValidation)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data. File values
// win over defaults.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default.
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	value := c.getValue(key)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	value := c.getValue(key)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional
// default. A scalar string becomes a one-element slice.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value := c.getValue(key)
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has returns true if the key exists in the configuration data or as an
// environment override.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.getEnvValue(key) != "" {
		return true
	}
	return c.getValue(key) != nil
}

// Set stores a value under the given dot-notation key, creating nested
// tables as needed.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// FilePath returns the path the configuration was loaded from, if any.
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration format.
func (c *Config) Format() Format {
	return c.format
}

// getValue retrieves a configuration value by dot-notation key. The caller
// must hold at least a read lock.
func (c *Config) getValue(key string) interface{} {
	current := c.data

	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// getEnvValue retrieves the environment override for a configuration key.
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts "log.level" with prefix "CMDSH" to "CMDSH_LOG_LEVEL".
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return c.envPrefix + "_" + envKey
}
