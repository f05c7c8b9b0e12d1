package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/status-im/crypto-insight/interfaces"
)

// notAvailable is rendered for values the provider did not report
const notAvailable = "N/A"

var notAvailableJSON = []byte(`"` + notAvailable + `"`)

// displayDecimal renders a valid decimal as a JSON number and an absent one as "N/A"
type displayDecimal decimal.NullDecimal

func (d displayDecimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return notAvailableJSON, nil
	}
	return []byte(d.Decimal.String()), nil
}

// displayString renders an empty string as "N/A"
func displayString(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

type priceResponse struct {
	Symbol             string          `json:"symbol"`
	Chain              string          `json:"chain"`
	CurrentPrice       displayDecimal  `json:"current_price"`
	PriceChange24h     displayDecimal  `json:"price_change_24h"`
	PriceChangePercent displayDecimal  `json:"price_change_percent"`
	High24h            displayDecimal  `json:"high_24h"`
	Low24h             displayDecimal  `json:"low_24h"`
	Volume             displayDecimal  `json:"volume"`
	Source             string          `json:"source"`
	RawResponse        json.RawMessage `json:"raw_response,omitempty"`
}

func newPriceResponse(record *interfaces.PriceRecord) priceResponse {
	return priceResponse{
		Symbol:             record.Symbol,
		Chain:              record.Chain.String(),
		CurrentPrice:       displayDecimal(record.CurrentPrice),
		PriceChange24h:     displayDecimal(record.PriceChange24h),
		PriceChangePercent: displayDecimal(record.PriceChangePercent),
		High24h:            displayDecimal(record.High24h),
		Low24h:             displayDecimal(record.Low24h),
		Volume:             displayDecimal(record.Volume),
		Source:             record.Source,
		RawResponse:        record.RawResponse,
	}
}

type nativePriceResponse struct {
	Value    string `json:"value"`
	Decimals *int   `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
}

type metadataResponse struct {
	TokenName       string               `json:"tokenName"`
	TokenSymbol     string               `json:"tokenSymbol"`
	TokenLogo       string               `json:"tokenLogo"`
	TokenDecimals   *int                 `json:"tokenDecimals"`
	NativePrice     *nativePriceResponse `json:"nativePrice"`
	USDPrice        displayDecimal       `json:"usdPrice"`
	ExchangeName    string               `json:"exchangeName"`
	ExchangeAddress string               `json:"exchangeAddress"`
	TokenAddress    string               `json:"tokenAddress"`
}

func newMetadataResponse(record *interfaces.MetadataRecord) metadataResponse {
	response := metadataResponse{
		TokenName:       displayString(record.TokenName),
		TokenSymbol:     displayString(record.TokenSymbol),
		TokenLogo:       displayString(record.TokenLogo),
		TokenDecimals:   record.TokenDecimals,
		USDPrice:        displayDecimal(record.USDPrice),
		ExchangeName:    displayString(record.ExchangeName),
		ExchangeAddress: displayString(record.ExchangeAddress),
		TokenAddress:    record.TokenAddress,
	}
	if native := record.NativePrice; native != nil {
		response.NativePrice = &nativePriceResponse{
			Value:    displayString(native.Value),
			Decimals: native.Decimals,
			Name:     displayString(native.Name),
			Symbol:   displayString(native.Symbol),
			Address:  displayString(native.Address),
		}
	}
	return response
}

type reportResponse struct {
	ID                 string         `json:"id"`
	Symbol             string         `json:"symbol"`
	Chain              string         `json:"chain"`
	CurrentPrice       displayDecimal `json:"current_price"`
	PriceChange24h     displayDecimal `json:"price_change_24h"`
	PriceChangePercent displayDecimal `json:"price_change_percent"`
	High24h            displayDecimal `json:"high_24h"`
	Low24h             displayDecimal `json:"low_24h"`
	Volume             displayDecimal `json:"volume"`
	Source             string         `json:"source"`
	ReportSummary      string         `json:"report_summary"`
	CreatedAt          time.Time      `json:"created_at"`
}

func newReportResponse(report *interfaces.Report) reportResponse {
	return reportResponse{
		ID:                 report.ID.String(),
		Symbol:             report.Symbol,
		Chain:              report.Chain.String(),
		CurrentPrice:       displayDecimal(report.CurrentPrice),
		PriceChange24h:     displayDecimal(report.PriceChange24h),
		PriceChangePercent: displayDecimal(report.PriceChangePercent),
		High24h:            displayDecimal(report.High24h),
		Low24h:             displayDecimal(report.Low24h),
		Volume:             displayDecimal(report.Volume),
		Source:             report.Source,
		ReportSummary:      report.Summary,
		CreatedAt:          report.CreatedAt,
	}
}
