package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort       int    `mapstructure:"APP_PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	UpstreamURL   string `mapstructure:"UPSTREAM_URL"`
	UpstreamToken string `mapstructure:"UPSTREAM_TOKEN"`
	ProxyPrefix   string `mapstructure:"PROXY_PREFIX"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/pulse.db")
	viper.SetDefault("UPSTREAM_URL", "https://ail.buyhatke.com")
	viper.SetDefault("UPSTREAM_TOKEN", "")
	viper.SetDefault("PROXY_PREFIX", "/proxy")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
