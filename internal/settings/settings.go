// Package settings loads CLI settings layered as defaults, config file,
// DESIGNSYSTEM_* environment variables and command-line flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. DESIGNSYSTEM_THEME.
const EnvPrefix = "DESIGNSYSTEM"

// Settings are the resolved CLI settings.
type Settings struct {
	Theme     string `mapstructure:"theme" validate:"oneof=light dark default"`
	Format    string `mapstructure:"format" validate:"oneof=term html"`
	Width     int    `mapstructure:"width" validate:"min=0"`
	NoColor   bool   `mapstructure:"no_color"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"theme":      "light",
		"format":     "term",
		"width":      0,
		"no_color":   false,
		"log_level":  "warn",
		"log_format": "console",
	}
}

// flagKeys maps setting keys to the flag names that override them.
var flagKeys = map[string]string{
	"theme":     "theme",
	"format":    "format",
	"width":     "width",
	"no_color":  "no-color",
	"log_level": "log-level",
}

// Load resolves settings for cmd. configPath, when set, must exist; otherwise
// designsystem.yaml is looked up in the working directory and the user
// config directory and may be absent.
func Load(cmd *cobra.Command, configPath string) (Settings, error) {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("designsystem")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "designsystem"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Settings{}, dserrors.NewParseError(configPath, 0, err)
		}
	}

	if cmd != nil {
		for key, name := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, dserrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}
	if err := validator.New().Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			field := ves[0].Field()
			return Settings{}, dserrors.NewValidationError(strings.ToLower(field), fmt.Sprintf("invalid value %q", fmt.Sprint(ves[0].Value())), err)
		}
		return Settings{}, dserrors.NewValidationError("settings", err.Error(), err)
	}
	return s, nil
}
