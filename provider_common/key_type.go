package provider_common

// KeyType defines the CoinGecko API key type
type KeyType int

const (
	// NoKey means no API key is available
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

// ParseKeyType maps the configured key type name to a KeyType
func ParseKeyType(apiKey, keyType string) KeyType {
	if apiKey == "" {
		return NoKey
	}
	if keyType == "pro" {
		return ProKey
	}
	return DemoKey
}

func (k KeyType) String() string {
	switch k {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	case NoKey:
		return "none"
	default:
		return "unknown"
	}
}
