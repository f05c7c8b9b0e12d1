package openai_chat

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/status-im/crypto-insight/interfaces"
)

func symbolParameters() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"symbol": {
				Type:        jsonschema.String,
				Description: "The cryptocurrency ticker symbol, e.g. BTC",
			},
			"chain": {
				Type:        jsonschema.String,
				Description: "Optional EVM chain of the token",
				Enum:        []string{"eth", "bsc", "polygon", "avalanche", "fantom"},
			},
		},
		Required: []string{"symbol"},
	}
}

// FunctionDefinitions returns the functions the model may call during a chat
func FunctionDefinitions() []openai.FunctionDefinition {
	return []openai.FunctionDefinition{
		{
			Name:        interfaces.FunctionGetCryptoPrice,
			Description: "Get the current price of a cryptocurrency",
			Parameters:  symbolParameters(),
		},
		{
			Name:        interfaces.FunctionGenerateCryptoReport,
			Description: "Generate an analytical report for a cryptocurrency",
			Parameters:  symbolParameters(),
		},
	}
}

func tools() []openai.Tool {
	definitions := FunctionDefinitions()
	result := make([]openai.Tool, 0, len(definitions))
	for i := range definitions {
		result = append(result, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &definitions[i],
		})
	}
	return result
}
