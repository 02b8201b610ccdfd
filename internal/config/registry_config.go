package config

type RegistryConfig struct {
	Address         string `yaml:"address"`
	ExpectedChainId int64  `yaml:"expected-chain-id"`
}
