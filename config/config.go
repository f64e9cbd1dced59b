package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment names.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent pipeline
	Catalog    CatalogConfig
	Model      ModelConfig
	Embedder   EmbedderConfig
	Classifier ClassifierConfig
	Qdrant     QdrantConfig
	Resolver   ResolverConfig

	// Sessions
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CatalogConfig struct {
	Path string // .json, .yaml or .yml
}

type ModelConfig struct {
	Path string // softmax artifact written by the trainer
}

type EmbedderConfig struct {
	Type   string // tfidf | voyage
	Voyage VoyageConfig
}

type VoyageConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Dimension int
}

type ClassifierConfig struct {
	Type        string // softmax | neighbors
	K           int
	Temperature float64
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
}

type ResolverConfig struct {
	Threshold     float64
	ContextWindow int
	Suggestions   int
}

type SessionConfig struct {
	MaxSessions  int
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables rate limiting
	Burst          int
	MaxClients     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/intent-chatbot/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/intent-chatbot/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Intent pipeline
	cfg.Catalog.Path = viper.GetString("catalog.path")
	cfg.Model.Path = viper.GetString("model.path")

	cfg.Embedder.Type = strings.ToLower(viper.GetString("embedder.type"))
	cfg.Embedder.Voyage.APIKey = viper.GetString("embedder.voyage.api_key")
	cfg.Embedder.Voyage.Model = viper.GetString("embedder.voyage.model")
	cfg.Embedder.Voyage.BaseURL = viper.GetString("embedder.voyage.base_url")
	cfg.Embedder.Voyage.Dimension = viper.GetInt("embedder.voyage.dimension")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Embedder.Voyage.APIKey = voyageKey
	}

	cfg.Classifier.Type = strings.ToLower(viper.GetString("classifier.type"))
	cfg.Classifier.K = viper.GetInt("classifier.k")
	cfg.Classifier.Temperature = viper.GetFloat64("classifier.temperature")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Resolver.Threshold = viper.GetFloat64("resolver.threshold")
	cfg.Resolver.ContextWindow = viper.GetInt("resolver.context_window")
	cfg.Resolver.Suggestions = viper.GetInt("resolver.suggestions")

	// Sessions
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5001)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("catalog.path", "data/intents.json")
	viper.SetDefault("model.path", "model/intent_model.json")
	viper.SetDefault("embedder.type", "tfidf")
	viper.SetDefault("embedder.voyage.model", "voyage-3-lite")
	viper.SetDefault("embedder.voyage.base_url", "https://api.voyageai.com/v1")
	viper.SetDefault("classifier.type", "softmax")
	viper.SetDefault("classifier.k", 10)
	viper.SetDefault("classifier.temperature", 0.1)
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "intent_patterns")

	viper.SetDefault("resolver.threshold", 0.6)
	viper.SetDefault("resolver.context_window", 3)
	viper.SetDefault("resolver.suggestions", 3)

	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}
	if c.Catalog.Path == "" {
		errs = append(errs, errors.New("catalog.path is required"))
	}

	switch c.Embedder.Type {
	case "tfidf":
	case "voyage":
		if c.Embedder.Voyage.APIKey == "" {
			errs = append(errs, errors.New("embedder.voyage.api_key is required for the voyage embedder"))
		}
	default:
		errs = append(errs, fmt.Errorf("embedder.type %q must be tfidf or voyage", c.Embedder.Type))
	}

	switch c.Classifier.Type {
	case "softmax":
		if c.Model.Path == "" {
			errs = append(errs, errors.New("model.path is required for the softmax classifier"))
		}
	case "neighbors":
		if c.Qdrant.URL == "" || c.Qdrant.CollectionName == "" {
			errs = append(errs, errors.New("qdrant.url and qdrant.collection_name are required for the neighbors classifier"))
		}
		if c.Classifier.K <= 0 {
			errs = append(errs, errors.New("classifier.k must be positive"))
		}
		if c.Classifier.Temperature <= 0 {
			errs = append(errs, errors.New("classifier.temperature must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("classifier.type %q must be softmax or neighbors", c.Classifier.Type))
	}

	if c.Resolver.Threshold < 0 || c.Resolver.Threshold > 1 {
		errs = append(errs, fmt.Errorf("resolver.threshold %v outside [0,1]", c.Resolver.Threshold))
	}
	if c.Resolver.ContextWindow <= 0 {
		errs = append(errs, errors.New("resolver.context_window must be positive"))
	}
	if c.Resolver.Suggestions < 0 {
		errs = append(errs, errors.New("resolver.suggestions must not be negative"))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name is required"))
	}
	if c.RateLimit.RequestsPerMin < 0 {
		errs = append(errs, errors.New("rate_limit.requests_per_min must not be negative"))
	}

	return errors.Join(errs...)
}
