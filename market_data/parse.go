package market_data

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/interfaces"
)

func parsePrice(symbol string, chain interfaces.Chain, body []byte) (*interfaces.PriceRecord, error) {
	if err := validPayload(body); err != nil {
		return nil, err
	}
	payload := gjson.ParseBytes(body)

	return &interfaces.PriceRecord{
		Symbol:             symbol,
		Chain:              chain,
		CurrentPrice:       nullDecimal(payload.Get("usdPrice")),
		PriceChange24h:     nullDecimal(payload.Get("priceChange")),
		PriceChangePercent: firstDecimal(payload, "priceChangePercent", "24hrPercentChange"),
		High24h:            nullDecimal(payload.Get("highPrice")),
		Low24h:             nullDecimal(payload.Get("lowPrice")),
		Volume:             nullDecimal(payload.Get("volume")),
		Source:             interfaces.PriceSourceMoralis,
		RawResponse:        json.RawMessage(body),
	}, nil
}

func parseMetadata(body []byte) (*interfaces.MetadataRecord, error) {
	if err := validPayload(body); err != nil {
		return nil, err
	}
	payload := gjson.ParseBytes(body)

	tokenAddress := strings.TrimSpace(payload.Get("tokenAddress").String())
	if tokenAddress == "" {
		return nil, interfaces.NewPayloadError("Contract address not found", body, nil)
	}

	record := &interfaces.MetadataRecord{
		TokenName:       payload.Get("tokenName").String(),
		TokenSymbol:     payload.Get("tokenSymbol").String(),
		TokenLogo:       payload.Get("tokenLogo").String(),
		TokenDecimals:   optionalInt(payload.Get("tokenDecimals")),
		USDPrice:        nullDecimal(payload.Get("usdPrice")),
		ExchangeName:    payload.Get("exchangeName").String(),
		ExchangeAddress: payload.Get("exchangeAddress").String(),
		TokenAddress:    tokenAddress,
	}

	if native := payload.Get("nativePrice"); native.IsObject() {
		record.NativePrice = &interfaces.NativePrice{
			Value:    native.Get("value").String(),
			Decimals: optionalInt(native.Get("decimals")),
			Name:     native.Get("name").String(),
			Symbol:   native.Get("symbol").String(),
			Address:  native.Get("address").String(),
		}
	}

	return record, nil
}

// nullDecimal accepts JSON numbers and numeric strings; anything else is not available
func nullDecimal(result gjson.Result) decimal.NullDecimal {
	var raw string
	switch result.Type {
	case gjson.Number:
		raw = result.Raw
	case gjson.String:
		raw = strings.TrimSpace(result.Str)
	default:
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func firstDecimal(payload gjson.Result, paths ...string) decimal.NullDecimal {
	for _, path := range paths {
		if d := nullDecimal(payload.Get(gjson.Escape(path))); d.Valid {
			return d
		}
	}
	return decimal.NullDecimal{}
}

// optionalInt reads integers that Moralis sends either as numbers or strings
func optionalInt(result gjson.Result) *int {
	d := nullDecimal(result)
	if !d.Valid || !d.Decimal.IsInteger() {
		return nil
	}
	v := int(d.Decimal.IntPart())
	return &v
}
