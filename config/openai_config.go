package config

import "errors"

type OpenAIConfig struct {
	APIKey string `yaml:"-"`
	// BaseURL overrides the OpenAI endpoint, mostly used by tests
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model: "gpt-4-1106-preview",
	}
}

func (c OpenAIConfig) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, errors.New("api key (OPENAI_API_KEY) is required"))
	}
	if c.Model == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, errors.New("temperature must be between 0 and 2"))
	}
	return errors.Join(errs...)
}
