package interfaces

import "encoding/json"

// Function names offered to the model during a chat
const (
	FunctionGetCryptoPrice       = "get_crypto_price"
	FunctionGenerateCryptoReport = "generate_crypto_report"
)

// ChatAction is the closed set of outcomes of a chat completion:
// PlainText, InvokeGetPrice or InvokeGenerateReport
type ChatAction interface {
	chatAction()
}

// PlainText is a completion that did not request a function call
type PlainText struct {
	Content string
	// Raw is the full completion response as returned by the provider
	Raw json.RawMessage
}

// InvokeGetPrice asks for the price of a symbol
type InvokeGetPrice struct {
	Symbol string
	Chain  Chain
}

// InvokeGenerateReport asks for a report on a symbol
type InvokeGenerateReport struct {
	Symbol string
	Chain  Chain
}

func (PlainText) chatAction()            {}
func (InvokeGetPrice) chatAction()       {}
func (InvokeGenerateReport) chatAction() {}
