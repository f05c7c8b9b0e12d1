package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/crypto-insight/interfaces"
	mock_interfaces "github.com/status-im/crypto-insight/interfaces/mocks"
)

func btcRecord() *interfaces.PriceRecord {
	return &interfaces.PriceRecord{
		Symbol:             "BTC",
		Chain:              interfaces.ChainEth,
		CurrentPrice:       decimal.NewNullDecimal(decimal.NewFromInt(65000)),
		PriceChangePercent: decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
		Volume:             decimal.NewNullDecimal(decimal.RequireFromString("1000000")),
		Source:             interfaces.PriceSourceMoralis,
	}
}

func TestBuildPrompt(t *testing.T) {
	expected := "Generate an analytical report for the token BTC.\n" +
		"Price: 65000 USD\n" +
		"24h Change: 2.5%\n" +
		"Trading Volume: 1000000\n" +
		"Provide an investment analysis, risks, and insights."
	assert.Equal(t, expected, BuildPrompt(*btcRecord()))

	record := btcRecord()
	record.Volume = decimal.NullDecimal{}
	assert.Contains(t, BuildPrompt(*record), "Trading Volume: unknown\n")
}

func TestSynthesizer_GenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	market := mock_interfaces.NewMockIMarketDataService(ctrl)
	text := mock_interfaces.NewMockITextGenerator(ctrl)

	market.EXPECT().GetPrice(gomock.Any(), "BTC", interfaces.ChainEth).Return(btcRecord(), nil)
	text.EXPECT().Complete(gomock.Any(), BuildPrompt(*btcRecord())).Return("  Bitcoin remains the market leader.  ", nil)

	synthesizer := NewSynthesizer(market, text)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	synthesizer.now = func() time.Time { return fixed }

	report, err := synthesizer.GenerateReport(context.Background(), "BTC", interfaces.ChainEth)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, "BTC", report.Symbol)
	assert.Equal(t, "Bitcoin remains the market leader.", report.Summary)
	assert.Equal(t, btcRecord().CurrentPrice, report.CurrentPrice)
	assert.Equal(t, interfaces.PriceSourceMoralis, report.Source)
	assert.Equal(t, fixed.UTC(), report.CreatedAt)
}

func TestSynthesizer_PropagatesMarketErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	market := mock_interfaces.NewMockIMarketDataService(ctrl)
	text := mock_interfaces.NewMockITextGenerator(ctrl)

	notFound := &interfaces.ResultError{Kind: interfaces.KindNotFound, Message: "contract address not found for NOPE"}
	market.EXPECT().GetPrice(gomock.Any(), "NOPE", interfaces.ChainEth).Return(nil, notFound)
	text.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

	report, err := NewSynthesizer(market, text).GenerateReport(context.Background(), "NOPE", interfaces.ChainEth)
	assert.Nil(t, report)
	assert.Same(t, notFound, err)
}

func TestSynthesizer_NoChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	market := mock_interfaces.NewMockIMarketDataService(ctrl)
	text := mock_interfaces.NewMockITextGenerator(ctrl)

	market.EXPECT().GetPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(btcRecord(), nil)
	text.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return("", interfaces.NewPayloadError("completion returned no choices", nil, nil))

	_, err := NewSynthesizer(market, text).GenerateReport(context.Background(), "BTC", interfaces.ChainEth)
	assert.Equal(t, interfaces.KindPayload, interfaces.KindOf(err))
}
