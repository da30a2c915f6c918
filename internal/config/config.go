package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Value extractor
	ExtractorBackend string // "openai" or "ollama"
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	OllamaHost       string
	OllamaModel      string

	// Upload limits
	MaxUploadBytes int64

	// Bulk extraction
	MaxConcurrentExtract int

	// Section classification
	SectionHeaderLines   int
	SectionSignatureTail int

	// Location resolution
	MinContextChars int

	// PDF
	PDFFallbackPdftotext bool

	// Extractor latency stats window
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("AUTOFILL_API_KEY"),

		ExtractorBackend: envOr("EXTRACTOR_BACKEND", "openai"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:      envOr("OPENAI_MODEL", "gpt-4o"),
		OllamaHost:       os.Getenv("OLLAMA_HOST"),
		OllamaModel:      envOr("OLLAMA_MODEL", "llama3.1"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		MaxConcurrentExtract: envInt("MAX_CONCURRENT_EXTRACT", 5),

		SectionHeaderLines:   envInt("SECTION_HEADER_LINES", 3),
		SectionSignatureTail: envInt("SECTION_SIGNATURE_TAIL", 5),

		MinContextChars: envInt("MIN_CONTEXT_CHARS", 40),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxConcurrentExtract <= 0 {
		cfg.MaxConcurrentExtract = 5
	}
	if cfg.SectionHeaderLines <= 0 {
		cfg.SectionHeaderLines = 3
	}
	if cfg.SectionSignatureTail <= 0 {
		cfg.SectionSignatureTail = 5
	}
	if cfg.MinContextChars <= 0 {
		cfg.MinContextChars = 40
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("AUTOFILL_API_KEY is required")
	}
	switch c.ExtractorBackend {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
	case "ollama":
		// OLLAMA_HOST defaults to the local server.
	default:
		return fmt.Errorf("unknown EXTRACTOR_BACKEND %q (expected openai or ollama)", c.ExtractorBackend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
