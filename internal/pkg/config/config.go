package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        string
	MetricsAddr string
	PprofAddr   string
}

type LogConfig struct {
	Level  string
	Format string
}

// CompletionConfig selects and configures the LLM provider.
type CompletionConfig struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqBaseURL  string
	GroqModel    string
	Timeout      time.Duration
}

type IdentityConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

type MediaConfig struct {
	YouTubeAPIKey  string
	ImageSearchURL string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowAll       bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
}

type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Completion    CompletionConfig
	Identity      IdentityConfig
	Media         MediaConfig
	CORS          CORSConfig
	RateLimit     RateLimitConfig
	Observability ObservabilityConfig
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

// Load reads configuration from the environment. Missing API keys are not
// errors: each one only disables its own capability.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	timeout, err := time.ParseDuration(v.GetString("COMPLETION_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPLETION_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("SERVER_PORT"),
			MetricsAddr: v.GetString("METRICS_ADDR"),
			PprofAddr:   v.GetString("PPROF_ADDR"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Completion: CompletionConfig{
			Provider:     strings.ToLower(v.GetString("COMPLETION_PROVIDER")),
			GeminiAPIKey: apiKey(v.GetString("GEMINI_API_KEY")),
			GeminiModel:  v.GetString("GEMINI_MODEL"),
			GroqAPIKey:   apiKey(v.GetString("GROQ_API_KEY")),
			GroqBaseURL:  strings.TrimSuffix(v.GetString("GROQ_BASE_URL"), "/"),
			GroqModel:    v.GetString("GROQ_MODEL"),
			Timeout:      timeout,
		},
		Identity: IdentityConfig{
			URL:       strings.TrimSuffix(v.GetString("SUPABASE_URL"), "/"),
			AnonKey:   apiKey(v.GetString("SUPABASE_ANON_KEY")),
			JWTSecret: v.GetString("SUPABASE_JWT_SECRET"),
		},
		Media: MediaConfig{
			YouTubeAPIKey:  apiKey(v.GetString("YOUTUBE_API_KEY")),
			ImageSearchURL: v.GetString("IMAGE_SEARCH_URL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: allowedOrigins(v.GetString("ALLOWED_ORIGINS"), v.GetString("FRONTEND_URL")),
			AllowAll:       v.GetString("VERCEL_ENV") != "",
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("METRICS_ADDR", ":9092")
	v.SetDefault("PPROF_ADDR", ":6060")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("COMPLETION_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("COMPLETION_TIMEOUT", "60s")
	v.SetDefault("IMAGE_SEARCH_URL", "https://duckduckgo.com")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("OTEL_SERVICE_NAME", "travelmind-api")
}

func validate(cfg *Config) error {
	switch cfg.Completion.Provider {
	case "gemini", "groq":
	default:
		return fmt.Errorf("unknown COMPLETION_PROVIDER %q", cfg.Completion.Provider)
	}
	if cfg.RateLimit.RPS < 0 || cfg.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	return nil
}

// apiKey treats template placeholders such as "your_groq_api_key_here" as unset.
func apiKey(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "your_") && strings.HasSuffix(value, "_here") {
		return ""
	}
	return value
}

func allowedOrigins(list, frontendURL string) []string {
	var origins []string
	if strings.TrimSpace(list) == "" {
		origins = append(origins, defaultOrigins...)
	} else {
		for _, o := range strings.Split(list, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if frontendURL != "" {
		origins = append(origins, frontendURL)
	}
	return origins
}

// Configured reports whether the selected provider has a credential.
func (c CompletionConfig) Configured() bool {
	switch c.Provider {
	case "groq":
		return c.GroqAPIKey != ""
	default:
		return c.GeminiAPIKey != ""
	}
}

// Configured reports whether the identity provider can be reached.
func (c IdentityConfig) Configured() bool {
	return c.URL != "" && c.AnonKey != ""
}
