package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_ADDR", "PUBLIC_API_BASE_URL", "HERO_INTERVAL_MS", "TESTIMONIAL_INTERVAL_MS", "LEADS_STORE", "CONTENT_WATCH"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":3000", cfg.GetServerAddr())
	assert.Equal(t, "http://localhost:8000", cfg.GetAPIBaseURL())
	assert.Equal(t, 6*time.Second, cfg.GetHeroInterval())
	assert.Equal(t, 8*time.Second, cfg.GetTestimonialInterval())
	assert.Equal(t, "memory", cfg.GetLeadsStore())
	assert.False(t, cfg.GetContentWatch())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PUBLIC_API_BASE_URL", "https://api.example.com/")
	t.Setenv("HERO_INTERVAL_MS", "4500")
	t.Setenv("TESTIMONIAL_INTERVAL_MS", "not-a-number")
	t.Setenv("CONTENT_WATCH", "true")
	t.Setenv("LEAD_TIMEOUT", "3s")

	cfg := FromEnv()
	assert.Equal(t, "https://api.example.com", cfg.GetAPIBaseURL(), "trailing slash is trimmed")
	assert.Equal(t, 4500*time.Millisecond, cfg.GetHeroInterval())
	assert.Equal(t, 8*time.Second, cfg.GetTestimonialInterval(), "invalid values fall back to the default")
	assert.True(t, cfg.GetContentWatch())
	assert.Equal(t, 3*time.Second, cfg.GetLeadTimeout())
}
