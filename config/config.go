package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries all runtime settings for the routing agent, loaded from
// the environment with an optional .env file on top.
type Config struct {
	LLM    LLMConfig
	Vector VectorConfig
	Graph  GraphConfig
	Web    WebConfig
}

// LLMConfig configures the completion backend used for planning and
// answer synthesis.
type LLMConfig struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"omitempty,url"`
	Model   string `validate:"required"`
}

// VectorConfig configures the pgvector document store.
type VectorConfig struct {
	ConnString string `validate:"omitempty"`
	TableName  string `validate:"required"`
	Dimension  int    `validate:"gt=0"`
	TopK       int    `validate:"gt=0,lte=50"`
}

// GraphConfig configures the FalkorDB knowledge graph.
type GraphConfig struct {
	URL       string `validate:"omitempty"`
	GraphName string `validate:"required"`
}

// WebConfig configures the web search backend.
type WebConfig struct {
	TavilyAPIKey string `validate:"omitempty"`
	MaxResults   int    `validate:"gt=0,lte=20"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; real environment
// variables win over file entries.
func Load() (*Config, error) {
	// Load never overrides variables that are already set.
	_ = godotenv.Load()

	cfg := &Config{
		LLM: LLMConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		},
		Vector: VectorConfig{
			ConnString: getEnv("POSTGRES_URL", ""),
			TableName:  getEnv("VECTOR_TABLE", "documents"),
			Dimension:  getEnvAsInt("VECTOR_DIMENSION", 384),
			TopK:       getEnvAsInt("VECTOR_TOP_K", 5),
		},
		Graph: GraphConfig{
			URL:       getEnv("FALKORDB_URL", "falkordb://localhost:6379/ragroute"),
			GraphName: getEnv("GRAPH_NAME", "ragroute"),
		},
		Web: WebConfig{
			TavilyAPIKey: getEnv("TAVILY_API_KEY", ""),
			MaxResults:   getEnvAsInt("WEB_MAX_RESULTS", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
