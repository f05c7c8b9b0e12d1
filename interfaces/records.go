package interfaces

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceSourceMoralis is the provenance tag of records built from Moralis responses
const PriceSourceMoralis = "Moralis"

// PriceRecord is the normalized price of a token. Fields missing from the
// upstream payload stay invalid instead of being coerced to zero.
type PriceRecord struct {
	Symbol             string
	Chain              Chain
	CurrentPrice       decimal.NullDecimal
	PriceChange24h     decimal.NullDecimal
	PriceChangePercent decimal.NullDecimal
	High24h            decimal.NullDecimal
	Low24h             decimal.NullDecimal
	Volume             decimal.NullDecimal
	Source             string
	RawResponse        json.RawMessage

	// CacheStatus tells whether RawResponse came from the local price cache
	CacheStatus CacheStatus
}

// NativePrice is the token price expressed in the chain's native currency
type NativePrice struct {
	Value    string
	Decimals *int
	Name     string
	Symbol   string
	Address  string
}

// MetadataRecord describes a token as reported by the pricing provider
type MetadataRecord struct {
	TokenName       string
	TokenSymbol     string
	TokenLogo       string
	TokenDecimals   *int
	NativePrice     *NativePrice
	USDPrice        decimal.NullDecimal
	ExchangeName    string
	ExchangeAddress string
	TokenAddress    string
}

// Report is an immutable analytical report persisted once after generation
type Report struct {
	ID                 uuid.UUID
	Symbol             string
	Chain              Chain
	CurrentPrice       decimal.NullDecimal
	PriceChange24h     decimal.NullDecimal
	PriceChangePercent decimal.NullDecimal
	High24h            decimal.NullDecimal
	Low24h             decimal.NullDecimal
	Volume             decimal.NullDecimal
	Source             string
	Summary            string
	CreatedAt          time.Time
}

// NewReport builds a report from a price record and a generated summary
func NewReport(price PriceRecord, summary string, createdAt time.Time) Report {
	return Report{
		ID:                 uuid.New(),
		Symbol:             price.Symbol,
		Chain:              price.Chain,
		CurrentPrice:       price.CurrentPrice,
		PriceChange24h:     price.PriceChange24h,
		PriceChangePercent: price.PriceChangePercent,
		High24h:            price.High24h,
		Low24h:             price.Low24h,
		Volume:             price.Volume,
		Source:             price.Source,
		Summary:            summary,
		CreatedAt:          createdAt.UTC(),
	}
}
