package config

import "os"

// AIConfig holds configuration for the Groq-backed question generator
type AIConfig struct {
	APIKey      string  `json:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	TimeoutMS   int     `json:"timeoutMs"`
}

// DefaultAIConfig returns the default question generator configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("GROQ_API_KEY"),
		BaseURL:     getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:       getEnvOrDefault("GROQ_MODEL", "llama3-70b-8192"),
		Temperature: 0.7,
		MaxTokens:   150,
		TimeoutMS:   10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat completions endpoint
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}
