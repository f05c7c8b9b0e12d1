package interfaces

import "context"

//go:generate mockgen -destination=mocks/services.go . ITokenIDResolver,ITokenContractResolver,IFallbackSearcher,IPriceSource,IContractResolver,IMarketDataService,IReportGenerator,IReportStore,ITextGenerator,IChatAssistant

// ITokenIDResolver maps a search query to a provider token id
type ITokenIDResolver interface {
	ResolveTokenID(ctx context.Context, query string) (string, error)
}

// ITokenContractResolver maps a provider token id to its contract on a chain
type ITokenContractResolver interface {
	ResolveContract(ctx context.Context, tokenID string, chain Chain) (string, error)
}

// IFallbackSearcher is the last resort symbol search
type IFallbackSearcher interface {
	Search(ctx context.Context, symbol string) (string, error)
}

// IPriceSource returns the raw price payload for a token contract
type IPriceSource interface {
	TokenPrice(ctx context.Context, address string, chain Chain) ([]byte, error)
}

// IContractResolver maps a ticker symbol to a token contract address on a chain
type IContractResolver interface {
	// Resolve returns the contract address, or an error matching ErrNotFound
	// or ErrUnsupportedAsset when the symbol cannot be resolved
	Resolve(ctx context.Context, symbol string, chain Chain) (string, error)
}

// IMarketDataService aggregates price and metadata for a symbol
type IMarketDataService interface {
	GetPrice(ctx context.Context, symbol string, chain Chain) (*PriceRecord, error)
	GetMetadata(ctx context.Context, symbol string, chain Chain) (*MetadataRecord, error)
}

// IReportGenerator synthesizes analytical reports without persisting them
type IReportGenerator interface {
	GenerateReport(ctx context.Context, symbol string, chain Chain) (*Report, error)
}

// IReportStore persists generated reports
type IReportStore interface {
	// Save inserts a new report. Reports are never updated.
	Save(ctx context.Context, report Report) error
	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}

// ITextGenerator produces a completion for a single prompt
type ITextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// IChatAssistant runs a chat completion that may request a function call
type IChatAssistant interface {
	Chat(ctx context.Context, prompt string) (ChatAction, error)
}
