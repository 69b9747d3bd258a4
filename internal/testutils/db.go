package testutils

import (
	"os"
	"testing"
)

// RequireSurreal skips the test unless SURREAL_URL points at a database,
// loading .env.test first.
func RequireSurreal(t *testing.T) {
	t.Helper()
	ConfigForTests(t)
	if os.Getenv("SURREAL_URL") == "" {
		t.Skip("SURREAL_URL not set; skipping SurrealDB integration test")
	}
}
