/*
Package config manages TOML config for typeahead services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"typeahead/internal/utils"
	"typeahead/pkg/suggest"
)

// Config holds the entire config structure
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig holds the ranking tunables. The defaults (5, 2, 2) are
// load-bearing: hosts depend on them staying put.
type SuggestConfig struct {
	Limit           int `toml:"limit"`
	MinWordLength   int `toml:"min_word_length"`
	MaxEditDistance int `toml:"max_edit_distance"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MaxBufferLen int  `toml:"max_buffer_len"`
	MaxWordLen   int  `toml:"max_word_len"`
	EnableFilter bool `toml:"enable_filter"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// Options converts the suggest section to ranker options.
func (sc SuggestConfig) Options() suggest.Options {
	return suggest.Options{
		Limit:           sc.Limit,
		MinWordLength:   sc.MinWordLength,
		MaxEditDistance: sc.MaxEditDistance,
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	defaults := suggest.DefaultOptions()
	return &Config{
		Suggest: SuggestConfig{
			Limit:           defaults.Limit,
			MinWordLength:   defaults.MinWordLength,
			MaxEditDistance: defaults.MaxEditDistance,
		},
		Server: ServerConfig{
			MaxLimit:     16,
			MaxBufferLen: 8192,
			MaxWordLen:   60,
			EnableFilter: true,
		},
		CLI: CliConfig{
			DefaultLimit:    defaults.Limit,
			DefaultNoFilter: false,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/typeahead/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	defaultPath, err := resolver.GetConfigPath("config.toml")
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse from a broken
// TOML file, keeping defaults for the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if suggestSection, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(suggestSection, &config.Suggest)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractSuggestConfig(data map[string]any, sc *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		sc.Limit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		sc.MinWordLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_edit_distance"); ok {
		sc.MaxEditDistance = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_buffer_len"); ok {
		server.MaxBufferLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		server.MaxWordLen = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the suggest tunables and saves to file
func (c *Config) Update(configPath string, limit, minWordLength, maxEditDistance *int) error {
	if limit != nil {
		c.Suggest.Limit = *limit
	}
	if minWordLength != nil {
		c.Suggest.MinWordLength = *minWordLength
	}
	if maxEditDistance != nil {
		c.Suggest.MaxEditDistance = *maxEditDistance
	}
	return SaveConfig(c, configPath)
}
