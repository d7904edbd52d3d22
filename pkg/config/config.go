/*
Package config manages TOML config for spellserve services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Dict    DictConfig    `toml:"dict"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig has matching related options, mapping 1:1 onto the engine
// configuration.
type SuggestConfig struct {
	MaxDistance   int  `toml:"max_distance"`
	MaxResults    int  `toml:"max_results"`
	CaseSensitive bool `toml:"case_sensitive"`
	MaxWordLen    int  `toml:"max_word_len"`
}

// DictConfig holds dictionary source options.
type DictConfig struct {
	Path      string `toml:"path"`       // word list file or chunk directory
	MaxChunks int    `toml:"max_chunks"` // 0 loads all available chunks
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Verbose     bool `toml:"verbose"`      // print edit distances
	CleanOutput bool `toml:"clean_output"` // suppress headers and numbering
	NoFilter    bool `toml:"no_filter"`    // skip input token filtering
}

// GetDefaultConfigPath returns the default path for config.toml, resolved
// through the PathResolver's chain: platform config dir first, then
// writable fallbacks.
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		return "", err
	}
	return pr.GetConfigPath("config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/spellserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
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
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			MaxDistance:   2,
			MaxResults:    5,
			CaseSensitive: false,
			MaxWordLen:    60,
		},
		Dict: DictConfig{
			Path:      "",
			MaxChunks: 0,
		},
		CLI: CliConfig{
			Verbose:     false,
			CleanOutput: false,
			NoFilter:    false,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
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

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages valid sections from a malformed TOML file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	parsed, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(parsed, "suggest"); ok {
		extractSuggestConfig(section, &config.Suggest)
	}
	if section, ok := utils.ExtractSection(parsed, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(parsed, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

// extractSuggestConfig extracts matching configuration from a map.
func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "max_distance"); ok {
		suggest.MaxDistance = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		suggest.MaxResults = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		suggest.CaseSensitive = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		suggest.MaxWordLen = val
	}
}

// extractDictConfig extracts dictionary configuration from a map.
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_chunks"); ok {
		dict.MaxChunks = val
	}
}

// extractCliConfig extracts CLI config from a map.
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "verbose"); ok {
		cli.Verbose = val
	}
	if val, ok := utils.ExtractBool(data, "clean_output"); ok {
		cli.CleanOutput = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the matching config values and saves to file.
func (c *Config) Update(configPath string, maxDistance, maxResults *int, caseSensitive *bool) error {
	suggest := &c.Suggest
	if maxDistance != nil {
		suggest.MaxDistance = *maxDistance
	}
	if maxResults != nil {
		suggest.MaxResults = *maxResults
	}
	if caseSensitive != nil {
		suggest.CaseSensitive = *caseSensitive
	}
	return SaveConfig(c, configPath)
}
