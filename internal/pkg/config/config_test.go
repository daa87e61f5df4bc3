package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("VERCEL_ENV", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.Completion.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Completion.GroqModel)
	assert.Equal(t, 60*time.Second, cfg.Completion.Timeout)
	assert.False(t, cfg.Completion.Configured())
	assert.False(t, cfg.Identity.Configured())
	assert.False(t, cfg.CORS.AllowAll)
	assert.Equal(t, defaultOrigins, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
}

func TestLoad_PlaceholderKeysAreUnset(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "your_groq_api_key_here")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Completion.GroqAPIKey)
	assert.False(t, cfg.Completion.Configured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "GROQ")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_BASE_URL", "http://localhost:9999/v1/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("FRONTEND_URL", "https://app.example")
	t.Setenv("VERCEL_ENV", "production")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "groq", cfg.Completion.Provider)
	assert.True(t, cfg.Completion.Configured())
	assert.Equal(t, "http://localhost:9999/v1", cfg.Completion.GroqBaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://app.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowAll)
	assert.Equal(t, "https://proj.supabase.co", cfg.Identity.URL)
	assert.True(t, cfg.Identity.Configured())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown provider", "COMPLETION_PROVIDER", "llamafile"},
		{"bad timeout", "COMPLETION_TIMEOUT", "soon"},
		{"negative rate", "RATE_LIMIT_RPS", "-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
