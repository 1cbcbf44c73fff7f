package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Detector struct {
		APIKey   string
		Endpoint string
	}
	Scanner struct {
		UserAgent string
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("detector.endpoint", "https://api.sapling.ai/api/v1/aidetect")
	viper.SetDefault("scanner.user_agent", "ScamLens-Bot/1.0 (+https://github.com/scamlens/backend)")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Detector.Endpoint = viper.GetString("detector.endpoint")
	// The detector key is a secret and comes from the environment only.
	config.Detector.APIKey = os.Getenv("DETECTOR_API_KEY")
	config.Scanner.UserAgent = viper.GetString("scanner.user_agent")

	return &config, nil
}

func (c *Config) ValidateDetector() error {
	if c.Detector.APIKey == "" {
		return fmt.Errorf("DETECTOR_API_KEY is required")
	}
	if c.Detector.Endpoint == "" {
		return fmt.Errorf("detector endpoint is required")
	}
	return nil
}
