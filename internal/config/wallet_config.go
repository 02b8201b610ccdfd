package config

import (
	"gopkg.in/yaml.v2"
)

const (
	WalletBackendMock = "mock"
	WalletBackendRpc  = "rpc"
)

type WalletConfig struct {
	Backend        string   `yaml:"backend"`
	RpcUrl         string   `yaml:"rpc-url"`
	DefaultChainId int64    `yaml:"default-chain-id"`
	Accounts       []string `yaml:"accounts"`
}

func (w *WalletConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Backend        string   `yaml:"backend"`
		RpcUrl         string   `yaml:"rpc-url"`
		DefaultChainId int64    `yaml:"default-chain-id"`
		Accounts       []string `yaml:"accounts"`
	}

	if err := unmarshal(&raw); err != nil {
		return err
	}

	if raw.Backend != WalletBackendMock && raw.Backend != WalletBackendRpc {
		return &yaml.TypeError{Errors: []string{"wallet backend must be mock or rpc"}}
	}

	if raw.Backend == WalletBackendRpc && raw.RpcUrl == "" {
		return &yaml.TypeError{Errors: []string{"rpc wallet backend requires rpc-url"}}
	}

	w.Backend = raw.Backend
	w.RpcUrl = raw.RpcUrl
	w.DefaultChainId = raw.DefaultChainId
	w.Accounts = raw.Accounts

	return nil
}
