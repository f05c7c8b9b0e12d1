package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/interfaces"
)

const promptTemplate = "Generate an analytical report for the token %s.\n" +
	"Price: %s USD\n" +
	"24h Change: %s%%\n" +
	"Trading Volume: %s\n" +
	"Provide an investment analysis, risks, and insights."

// Synthesizer turns a price record into a narrative report. It does not persist reports.
type Synthesizer struct {
	market interfaces.IMarketDataService
	text   interfaces.ITextGenerator
	now    func() time.Time
	log    *logrus.Entry
}

func NewSynthesizer(market interfaces.IMarketDataService, text interfaces.ITextGenerator) *Synthesizer {
	return &Synthesizer{
		market: market,
		text:   text,
		now:    time.Now,
		log:    logrus.WithField("component", "Reports"),
	}
}

// BuildPrompt renders the fixed report prompt for a price record
func BuildPrompt(price interfaces.PriceRecord) string {
	return fmt.Sprintf(promptTemplate,
		price.Symbol,
		promptValue(price.CurrentPrice),
		promptValue(price.PriceChangePercent),
		promptValue(price.Volume),
	)
}

func promptValue(value decimal.NullDecimal) string {
	if !value.Valid {
		return "unknown"
	}
	return value.Decimal.String()
}

// GenerateReport implements interfaces.IReportGenerator.
// Errors from the market data service are returned unchanged.
func (s *Synthesizer) GenerateReport(ctx context.Context, symbol string, chain interfaces.Chain) (*interfaces.Report, error) {
	price, err := s.market.GetPrice(ctx, symbol, chain)
	if err != nil {
		return nil, err
	}

	summary, err := s.text.Complete(ctx, BuildPrompt(*price))
	if err != nil {
		return nil, fmt.Errorf("generate summary for %s: %w", price.Symbol, err)
	}
	summary = strings.TrimSpace(summary)

	report := interfaces.NewReport(*price, summary, s.now())
	s.log.WithFields(logrus.Fields{"symbol": report.Symbol, "report_id": report.ID}).Info("report generated")
	return &report, nil
}
