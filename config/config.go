package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var configDir string

// Init loads configuration, from the given path when set, otherwise from
// ~/.config/tunetext/config.toml. A missing file just means defaults.
func Init(configPath string) error {
	var configFilePath string
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		configDir = filepath.Join(home, ".config", "tunetext")
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	viper.SetConfigType("toml")
	setDefaults()

	viper.SetConfigFile(configFilePath)
	_ = viper.ReadInConfig()

	return nil
}

func setDefaults() {
	viper.SetDefault("render.accidentals", false)
	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("log.file", filepath.Join(configDir, "tunetext.log"))
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetConfigDir() string {
	return configDir
}
