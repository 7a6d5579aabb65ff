// Config loading for the treelib CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/treelib/internal/paths"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TREELIB"

	cfgKeyMaxLines  = "max_lines"
	cfgKeyShowIDs   = "show_ids"
	cfgKeyLineStyle = "line_style"
	cfgKeyColor     = "color"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# treelib configuration

# Line style for rendered trees: ascii, ascii-ex or ascii-em
line_style: ascii-ex

# Maximum number of rendered lines; 0 renders every level
max_lines: 0

# Append [identifier] to every tag
show_ids: false

# Colour selected and picked nodes
color: false
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. A missing config.yaml is
// not an error. TREELIB_* environment variables override file values. Every
// failure is a system error.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, sysError(fmt.Errorf("ensure config dir: %w", err))
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, sysError(fmt.Errorf("ensure default config: %w", err))
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyMaxLines, defaults.MaxLines)
	v.SetDefault(cfgKeyShowIDs, defaults.ShowIDs)
	v.SetDefault(cfgKeyLineStyle, defaults.LineStyle)
	v.SetDefault(cfgKeyColor, defaults.Color)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, sysError(fmt.Errorf("read config: %w", err))
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, sysError(fmt.Errorf("decode config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, sysError(fmt.Errorf("invalid config: %w", err))
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
