package interfaces

import "strings"

// Chain identifies an EVM network supported by the pricing provider
type Chain string

const (
	ChainEth       Chain = "eth"
	ChainBSC       Chain = "bsc"
	ChainPolygon   Chain = "polygon"
	ChainAvalanche Chain = "avalanche"
	ChainFantom    Chain = "fantom"

	// DefaultChain is used when a request does not name a chain
	DefaultChain = ChainEth

	// DefaultPlatformKey is the CoinGecko platform used for unknown chains
	DefaultPlatformKey = "ethereum"
)

// platformKeys maps a chain to its CoinGecko platform key
var platformKeys = map[Chain]string{
	ChainEth:       "ethereum",
	ChainBSC:       "binance-smart-chain",
	ChainPolygon:   "polygon",
	ChainAvalanche: "avalanche",
	ChainFantom:    "fantom",
}

// ParseChain normalizes a user supplied chain. Empty input yields DefaultChain.
// Unknown values are kept as-is so the pricing provider can reject them.
func ParseChain(value string) Chain {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultChain
	}
	return Chain(value)
}

// PlatformKey returns the CoinGecko platform key for the chain,
// falling back to the Ethereum platform for unknown chains
func (c Chain) PlatformKey() string {
	if key, ok := platformKeys[c]; ok {
		return key
	}
	return DefaultPlatformKey
}

// Known reports whether the chain is one of the supported networks
func (c Chain) Known() bool {
	_, ok := platformKeys[c]
	return ok
}

func (c Chain) String() string {
	return string(c)
}
