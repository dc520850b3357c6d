package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/hueportal/internal/constants"
	"github.com/wheelibin/hueportal/internal/hue"
)

type Fixture struct {
	ID      string `mapstructure:"id"`
	LightID string `mapstructure:"lightId"`
	Name    string `mapstructure:"name"`
}

type Config struct {
	BridgeAddress    string        `mapstructure:"bridgeAddress"`
	Username         string        `mapstructure:"username"`
	DeviceType       string        `mapstructure:"deviceType"`
	DiscoveryURL     string        `mapstructure:"discoveryUrl"`
	Timeout          time.Duration `mapstructure:"timeout"`
	DiscoveryTimeout time.Duration `mapstructure:"discoveryTimeout"`
	Throttle         time.Duration `mapstructure:"throttle"`
	Debounce         time.Duration `mapstructure:"debounce"`
	LogLevel         string        `mapstructure:"logLevel"`
	LogFile          string        `mapstructure:"logFile"`
	Fixtures         []Fixture     `mapstructure:"fixtures"`
}

func setDefaults(v *viper.Viper) {
	// every key needs a default for env overrides to reach Unmarshal
	v.SetDefault("bridgeAddress", "")
	v.SetDefault("username", "")
	v.SetDefault("logFile", "")
	v.SetDefault("deviceType", constants.DefaultDeviceType)
	v.SetDefault("discoveryUrl", hue.DefaultDiscoveryURL)
	v.SetDefault("timeout", constants.DefaultRequestTimeout)
	v.SetDefault("discoveryTimeout", constants.DefaultDiscoveryTimeout)
	v.SetDefault("throttle", constants.LightCommandInterval)
	v.SetDefault("debounce", constants.ColorDebounceWindow)
	v.SetDefault("logLevel", "info")
}

// ReadConfig loads the config file, if any, and applies HUEPORTAL_* environment
// overrides. With an empty path the usual locations are searched and a missing
// file is not an error.
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")                                   // name of config file (without extension)
		v.AddConfigPath(fmt.Sprintf("/etc/%s/", constants.AppName)) // path to look for the config file in
		v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s/", constants.AppName))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(constants.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}
