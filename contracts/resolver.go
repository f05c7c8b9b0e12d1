package contracts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
)

// Resolution outcomes, also used as metric labels
const (
	OutcomeNative      = "native"
	OutcomeUnsupported = "unsupported"
	OutcomePrimary     = "primary"
	OutcomeVariant     = "variant"
	OutcomeFallback    = "fallback"
	OutcomeNotFound    = "not_found"
	OutcomeCancelled   = "cancelled"
)

// Resolver turns a ticker symbol into a contract address by trying, in order:
// the native and unsupported symbol sets, a CoinGecko lookup of the symbol,
// the same lookup for each wrapped variant, and finally an Ethplorer search.
type Resolver struct {
	tokenIDs  interfaces.ITokenIDResolver
	contracts interfaces.ITokenContractResolver
	fallback  interfaces.IFallbackSearcher

	native        map[string]bool
	nativeAddress string
	unsupported   map[string]bool

	log *logrus.Entry
}

func NewResolver(cfg config.ResolverConfig, tokenIDs interfaces.ITokenIDResolver, contracts interfaces.ITokenContractResolver, fallback interfaces.IFallbackSearcher) *Resolver {
	return &Resolver{
		tokenIDs:      tokenIDs,
		contracts:     contracts,
		fallback:      fallback,
		native:        symbolSet(cfg.NativeSymbols),
		nativeAddress: cfg.NativeAddress,
		unsupported:   symbolSet(cfg.UnsupportedSymbols),
		log:           logrus.WithField("component", "Contracts"),
	}
}

func symbolSet(symbols []string) map[string]bool {
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[strings.ToUpper(strings.TrimSpace(s))] = true
	}
	return set
}

// WrappedVariants returns the alternative search queries tried after the symbol itself
func WrappedVariants(symbol string) []string {
	lower := strings.ToLower(symbol)
	return []string{
		"wrapped " + symbol,
		"w" + lower,
		"wrapped-" + lower,
	}
}

// Resolve implements interfaces.IContractResolver
func (r *Resolver) Resolve(ctx context.Context, symbol string, chain interfaces.Chain) (string, error) {
	start := time.Now()
	address, outcome, err := r.resolve(ctx, strings.TrimSpace(symbol), chain)
	metrics.RecordResolution(outcome, time.Since(start))

	r.log.WithFields(logrus.Fields{
		"symbol":   symbol,
		"chain":    chain,
		"outcome":  outcome,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("contract resolution finished")

	return address, err
}

func (r *Resolver) resolve(ctx context.Context, symbol string, chain interfaces.Chain) (string, string, error) {
	upper := strings.ToUpper(symbol)
	if upper == "" {
		return "", OutcomeNotFound, interfaces.NewNotFoundError("empty symbol", nil)
	}

	if r.native[upper] {
		return r.nativeAddress, OutcomeNative, nil
	}
	if r.unsupported[upper] {
		return "", OutcomeUnsupported, interfaces.NewUnsupportedAssetError(
			fmt.Sprintf("%s is not supported on EVM chains", upper))
	}

	address, err := r.lookup(ctx, symbol, chain)
	if err != nil {
		return "", OutcomeCancelled, err
	}
	if address != "" {
		return address, OutcomePrimary, nil
	}

	for _, variant := range WrappedVariants(symbol) {
		address, err := r.lookup(ctx, variant, chain)
		if err != nil {
			return "", OutcomeCancelled, err
		}
		if address != "" {
			r.log.WithFields(logrus.Fields{"symbol": symbol, "variant": variant}).Debug("resolved through wrapped variant")
			return address, OutcomeVariant, nil
		}
	}

	address, err = r.fallback.Search(ctx, symbol)
	if err = r.absorb(ctx, "fallback search", symbol, err); err != nil {
		return "", OutcomeCancelled, err
	}
	if address != "" {
		return address, OutcomeFallback, nil
	}

	return "", OutcomeNotFound, interfaces.NewNotFoundError(
		fmt.Sprintf("no provider could resolve %s on %s", upper, chain), nil)
}

// lookup runs one token id + contract round. An empty address means absent.
// The contract step runs even without a token id; it answers that case locally.
func (r *Resolver) lookup(ctx context.Context, query string, chain interfaces.Chain) (string, error) {
	tokenID, err := r.tokenIDs.ResolveTokenID(ctx, query)
	if err = r.absorb(ctx, "token id lookup", query, err); err != nil {
		return "", err
	}

	address, err := r.contracts.ResolveContract(ctx, tokenID, chain)
	if err = r.absorb(ctx, "contract lookup", query, err); err != nil {
		return "", err
	}
	return address, nil
}

// absorb logs stage failures and swallows them; only cancellation is returned
func (r *Resolver) absorb(ctx context.Context, stage, query string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	entry := r.log.WithFields(logrus.Fields{"stage": stage, "query": query})
	if errors.Is(err, interfaces.ErrNotFound) {
		entry.Debugf("absent: %v", err)
	} else {
		entry.Warnf("provider failure treated as absent: %v", err)
	}
	return nil
}
