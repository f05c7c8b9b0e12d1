package config

import (
	"errors"
	"time"
)

// WrappedEtherAddress is the WETH contract used to price native ETH
const WrappedEtherAddress = "0xC02aaa39b223FE8D0A0E5C4F27eAD9083C756Cc2"

// ResolverConfig configures the contract address resolution pipeline
type ResolverConfig struct {
	// MaxAttempts is the number of search attempts made while CoinGecko answers 429
	MaxAttempts int           `yaml:"max_attempts"`
	RetryDelay  time.Duration `yaml:"retry_delay"`

	// NativeSymbols resolve to NativeAddress without any network call
	NativeSymbols []string `yaml:"native_symbols"`
	NativeAddress string   `yaml:"native_address"`

	// UnsupportedSymbols are assets outside the EVM family
	UnsupportedSymbols []string `yaml:"unsupported_symbols"`
}

func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		MaxAttempts:        3,
		RetryDelay:         2 * time.Second,
		NativeSymbols:      []string{"ETH", "ETHEREUM"},
		NativeAddress:      WrappedEtherAddress,
		UnsupportedSymbols: []string{"SOL", "SOLANA", "XLM", "STELLAR"},
	}
}

func (c ResolverConfig) Validate() error {
	var errs []error
	if c.MaxAttempts < 1 {
		errs = append(errs, errors.New("max_attempts must be at least 1"))
	}
	if c.RetryDelay < 0 {
		errs = append(errs, errors.New("retry_delay cannot be negative"))
	}
	if len(c.NativeSymbols) > 0 && c.NativeAddress == "" {
		errs = append(errs, errors.New("native_address is required when native_symbols are set"))
	}
	return errors.Join(errs...)
}
