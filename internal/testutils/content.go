package testutils

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/impacto/site/internal/content"
)

// ContentStore loads a content store from files, a map of content-relative
// path to file body held in memory.
func ContentStore(t *testing.T, files map[string]string) *content.Store {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, body := range files {
		if err := afero.WriteFile(fsys, name, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	store := content.NewStore(fsys, nil)
	if err := store.Load(); err != nil {
		t.Fatalf("load content: %v", err)
	}
	return store
}
