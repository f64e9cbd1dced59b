package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func validConfig() Config {
	return Config{
		HTTPServer: HTTPServerConfig{Port: 5001, Mode: "debug"},
		Catalog:    CatalogConfig{Path: "data/intents.json"},
		Model:      ModelConfig{Path: "model/intent_model.json"},
		Embedder:   EmbedderConfig{Type: "tfidf"},
		Classifier: ClassifierConfig{Type: "softmax", K: 10, Temperature: 0.1},
		Resolver:   ResolverConfig{Threshold: 0.6, ContextWindow: 3, Suggestions: 3},
		Session:    SessionConfig{CookieName: "session_id", TTL: time.Minute},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"Bad Port", func(c *Config) { c.HTTPServer.Port = 0 }, "http_server.port"},
		{"Unknown Embedder", func(c *Config) { c.Embedder.Type = "bert" }, "embedder.type"},
		{"Voyage Without Key", func(c *Config) { c.Embedder.Type = "voyage" }, "api_key"},
		{"Unknown Classifier", func(c *Config) { c.Classifier.Type = "svm" }, "classifier.type"},
		{"Neighbors Without Qdrant", func(c *Config) { c.Classifier.Type = "neighbors" }, "qdrant.url"},
		{"Threshold Above One", func(c *Config) { c.Resolver.Threshold = 1.2 }, "resolver.threshold"},
		{"Zero Window", func(c *Config) { c.Resolver.ContextWindow = 0 }, "context_window"},
		{"Missing Cookie Name", func(c *Config) { c.Session.CookieName = "" }, "cookie_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults Without File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Resolver.Threshold != 0.6 || cfg.Resolver.ContextWindow != 3 || cfg.Resolver.Suggestions != 3 {
			t.Errorf("unexpected resolver defaults %+v", cfg.Resolver)
		}
		if cfg.Session.TTL != 30*time.Minute {
			t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
		}
		if cfg.Embedder.Type != "tfidf" || cfg.Classifier.Type != "softmax" {
			t.Errorf("unexpected back ends %s/%s", cfg.Embedder.Type, cfg.Classifier.Type)
		}
	})

	t.Run("File And Env Override", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		os.Mkdir(filepath.Join(dir, "config"), 0o755)
		yaml := "resolver:\n  threshold: 0.7\nclassifier:\n  type: neighbors\n"
		if err := os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("HTTP_SERVER_PORT", "9090")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Resolver.Threshold != 0.7 || cfg.Classifier.Type != "neighbors" {
			t.Errorf("file values not applied: %+v %+v", cfg.Resolver, cfg.Classifier)
		}
		if cfg.HTTPServer.Port != 9090 {
			t.Errorf("env override not applied, port=%d", cfg.HTTPServer.Port)
		}
	})

	t.Run("Invalid Values Fail", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("RESOLVER_THRESHOLD", "2")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
