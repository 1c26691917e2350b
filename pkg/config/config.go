package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"agenda/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	DefaultColor    string            `mapstructure:"default_color" json:"default_color"`
	DefaultReminder string            `mapstructure:"default_reminder" json:"default_reminder"`
	UpcomingLimit   int               `mapstructure:"upcoming_limit" json:"upcoming_limit"`
	KeyMap          map[string]string `mapstructure:"keymap" json:"keymap"`
	StylesFile      string            `mapstructure:"styles_file" json:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Priority badge colors
	PriorityLowColor    string `json:"priority_low_color"`
	PriorityMediumColor string `json:"priority_medium_color"`
	PriorityHighColor   string `json:"priority_high_color"`
	PriorityUrgentColor string `json:"priority_urgent_color"`
}

// Load loads the application configuration from the specified path, writing
// a default config file on first run.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "agenda")

	config := Config{
		DefaultColor:    "#3b82f6",
		DefaultReminder: "1d",
		UpcomingLimit:   5,
		KeyMap:          keymaps.GetDefaultKeyMappings(),
		StylesFile:      filepath.Join(configDir, "styles.json"),
	}

	// Setup viper
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		viper.Set("default_color", config.DefaultColor)
		viper.Set("default_reminder", config.DefaultReminder)
		viper.Set("upcoming_limit", config.UpcomingLimit)
		viper.Set("keymap", config.KeyMap)
		viper.Set("styles_file", config.StylesFile)
		if err := viper.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	} else {
		if err := viper.Unmarshal(&config); err != nil {
			return config, Styles{}, err
		}
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:         "240",
		AccentColor:         "205",
		NormalTextColor:     "86",
		SelectedTextColor:   "229",
		SelectedBgColor:     "57",
		ErrorColor:          "9",
		PriorityLowColor:    "2",
		PriorityMediumColor: "3",
		PriorityHighColor:   "208",
		PriorityUrgentColor: "196",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Write the defaults so users have a file to edit
			if err := os.MkdirAll(filepath.Dir(stylesPath), 0755); err != nil {
				return defaultStyles, err
			}
			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}
			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}
			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
