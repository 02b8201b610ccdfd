package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	WalletConfig   WalletConfig   `yaml:"wallet"`
	RegistryConfig RegistryConfig `yaml:"registry"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
}

var GlobalConfig *Config = nil

func InitializeGlobalConfig(path string) error {
	if GlobalConfig != nil {
		return nil
	}

	var err error
	GlobalConfig, err = LoadConfigFile(path)

	return err
}

func LoadConfigFile(path string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)

	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}
