// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/impacto/site/internal/config"
)

// ConfigForTests loads .env.test from the project root into the test's
// environment and returns the resulting configuration. A missing .env.test
// leaves the environment untouched.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(ProjectRoot(t), ".env.test"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to read .env.test: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	return config.FromEnv()
}

// ProjectRoot walks up from the working directory to the directory holding
// go.mod.
func ProjectRoot(t *testing.T) string {
	t.Helper()
	path, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}

// InProcessConfig is a self-contained configuration: embedded content, the
// bundled lead API on the memory store and the log mailer. Nothing listens
// on APIBaseURL, so the contact form fails unless a test points it
// elsewhere.
func InProcessConfig() *config.Config {
	return &config.Config{
		ServerAddr:          "127.0.0.1:0",
		SiteURL:             "http://localhost:3000",
		APIBaseURL:          "http://127.0.0.1:1",
		SessionSecret:       "test-secret",
		LogFormat:           "text",
		LogLevel:            "warn",
		HeroInterval:        time.Second,
		TestimonialInterval: time.Second,
		LeadTimeout:         time.Second,
		LeadsAPIEnabled:     true,
		LeadsStore:          "memory",
		EmailProvider:       "log",
	}
}
