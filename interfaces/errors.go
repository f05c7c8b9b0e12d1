package interfaces

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the HTTP layer
type ErrorKind string

const (
	// KindNotFound means no fallback stage could resolve the symbol
	KindNotFound ErrorKind = "not_found"
	// KindUpstreamHTTP means a provider answered with a non-2xx status
	KindUpstreamHTTP ErrorKind = "upstream_http"
	// KindRateLimited means a provider kept answering 429
	KindRateLimited ErrorKind = "rate_limited"
	// KindPayload means the provider answered 2xx with an unusable body
	KindPayload ErrorKind = "payload"
	// KindUnsupportedAsset means the symbol lives outside the EVM family
	KindUnsupportedAsset ErrorKind = "unsupported_asset"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrUnsupportedAsset = errors.New("token is not supported on EVM chains")
)

// ResultError is the structured error returned by the aggregation components
type ResultError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *ResultError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ResultError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a ResultError against the sentinel of its kind
func (e *ResultError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrUnsupportedAsset:
		return e.Kind == KindUnsupportedAsset
	}
	return false
}

// NewNotFoundError creates a KindNotFound error
func NewNotFoundError(message string, err error) *ResultError {
	return &ResultError{Kind: KindNotFound, Message: message, Err: err}
}

// NewUnsupportedAssetError creates a KindUnsupportedAsset error
func NewUnsupportedAssetError(message string) *ResultError {
	return &ResultError{Kind: KindUnsupportedAsset, Message: message}
}

// NewUpstreamHTTPError creates a KindUpstreamHTTP error keeping the raw response body
func NewUpstreamHTTPError(message string, statusCode int, body []byte) *ResultError {
	return &ResultError{Kind: KindUpstreamHTTP, Message: message, StatusCode: statusCode, Body: string(body)}
}

// NewPayloadError creates a KindPayload error keeping the raw response body
func NewPayloadError(message string, body []byte, err error) *ResultError {
	return &ResultError{Kind: KindPayload, Message: message, Body: string(body), Err: err}
}

// KindOf returns the kind of a ResultError anywhere in the chain, or "" if none
func KindOf(err error) ErrorKind {
	var resultErr *ResultError
	if errors.As(err, &resultErr) {
		return resultErr.Kind
	}
	return ""
}
