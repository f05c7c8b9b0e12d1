package openai_chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
)

// Client talks to the OpenAI chat completion API
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	metrics     *metrics.MetricsWriter
	log         *logrus.Entry
}

func NewClient(cfg config.OpenAIConfig, providers config.ProvidersConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		// Completions are slow; the provider timeout only bounds connection setup here
		Transport: &http.Transport{
			Proxy:       http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{Timeout: providers.ConnectionTimeout}).DialContext,
		},
	}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		metrics:     metrics.NewMetricsWriter(metrics.ProviderOpenAI),
		log:         logrus.WithField("component", "OpenAI"),
	}
}

func (c *Client) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
}

// Complete implements interfaces.ITextGenerator
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.create(ctx, c.request(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", interfaces.NewPayloadError("completion returned no choices", nil, nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// Chat implements interfaces.IChatAssistant
func (c *Client) Chat(ctx context.Context, prompt string) (interfaces.ChatAction, error) {
	req := c.request(prompt)
	req.Tools = tools()

	resp, err := c.create(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseChatAction(resp)
}

func (c *Client) create(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			c.metrics.OnRequest("error")
			return resp, ctx.Err()
		}
		return resp, c.upstreamError(err)
	}
	c.metrics.OnRequest("success")
	return resp, nil
}

func (c *Client) upstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		status := "http_error"
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			status = "rate_limited"
		}
		c.metrics.OnRequest(status)
		c.log.WithField("status", apiErr.HTTPStatusCode).Warnf("completion rejected: %s", apiErr.Message)
		return &interfaces.ResultError{
			Kind:       interfaces.KindUpstreamHTTP,
			Message:    "OpenAI API error",
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		c.metrics.OnRequest("http_error")
		return &interfaces.ResultError{
			Kind:       interfaces.KindUpstreamHTTP,
			Message:    "OpenAI API error",
			StatusCode: reqErr.HTTPStatusCode,
			Body:       string(reqErr.Body),
			Err:        err,
		}
	}

	c.metrics.OnRequest("error")
	return &interfaces.ResultError{Kind: interfaces.KindUpstreamHTTP, Message: "OpenAI request failed", Err: err}
}

// parseChatAction maps the first choice to a ChatAction. Tool calls win over
// the deprecated function_call field, which wins over plain content.
func parseChatAction(resp openai.ChatCompletionResponse) (interfaces.ChatAction, error) {
	if len(resp.Choices) == 0 {
		return nil, interfaces.NewPayloadError("completion returned no choices", nil, nil)
	}
	message := resp.Choices[0].Message

	for _, call := range message.ToolCalls {
		if call.Type == "" || call.Type == openai.ToolTypeFunction {
			return functionAction(call.Function.Name, call.Function.Arguments)
		}
	}
	if message.FunctionCall != nil {
		return functionAction(message.FunctionCall.Name, message.FunctionCall.Arguments)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode completion: %w", err)
	}
	return interfaces.PlainText{Content: message.Content, Raw: raw}, nil
}

func functionAction(name, arguments string) (interfaces.ChatAction, error) {
	if !gjson.Valid(arguments) {
		return nil, interfaces.NewPayloadError(fmt.Sprintf("invalid arguments for %s", name), []byte(arguments), nil)
	}
	args := gjson.Parse(arguments)

	symbol := strings.ToUpper(strings.TrimSpace(args.Get("symbol").String()))
	if symbol == "" {
		return nil, interfaces.NewPayloadError(fmt.Sprintf("%s called without a symbol", name), []byte(arguments), nil)
	}
	chain := interfaces.ParseChain(args.Get("chain").String())

	switch name {
	case interfaces.FunctionGetCryptoPrice:
		return interfaces.InvokeGetPrice{Symbol: symbol, Chain: chain}, nil
	case interfaces.FunctionGenerateCryptoReport:
		return interfaces.InvokeGenerateReport{Symbol: symbol, Chain: chain}, nil
	default:
		return nil, interfaces.NewPayloadError(fmt.Sprintf("unknown function %q", name), []byte(arguments), nil)
	}
}
