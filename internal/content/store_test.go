package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = `name: Test
hero:
  - image: /a.jpg
    phrase: Uno
  - image: /b.jpg
    phrase: Dos
testimonials:
  - quote: Excelente
    author: Ana
`

func post(title, date string, draft bool) string {
	d := "false"
	if draft {
		d = "true"
	}
	return "---\ntitle: " + title + "\ndescription: d\npublishedAt: " + date + "\ndraft: " + d + "\n---\nbody\n"
}

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(body), 0o644))
	}
	return fsys
}

func TestStore_Load(t *testing.T) {
	fsys := memFS(t, map[string]string{
		SiteFile:         testSite,
		"blog/viejo.md":  post("Viejo", "2023-01-01", false),
		"blog/nuevo.md":  post("Nuevo", "2024-01-01", false),
		"blog/oculto.md": post("Oculto", "2025-01-01", true),
		"blog/notas.txt": "ignored",
	})

	s := NewStore(fsys, nil)
	require.NoError(t, s.Load())

	posts := s.Posts()
	require.Len(t, posts, 2, "drafts are excluded from listings")
	assert.Equal(t, "nuevo", posts[0].Slug, "newest first")
	assert.Equal(t, "viejo", posts[1].Slug)
	assert.Len(t, s.AllPosts(), 3)

	_, err := s.Post("oculto")
	assert.ErrorIs(t, err, ErrNotFound, "drafts are not served")
	_, err = s.Post("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := s.Post("viejo")
	require.NoError(t, err)
	assert.Equal(t, "Viejo", p.Title)

	site := s.Site()
	assert.Equal(t, "Test", site.Name)
	assert.Len(t, site.Hero, 2)
	assert.Len(t, site.Testimonials, 1)
}

func TestStore_LoadKeepsPreviousContentOnError(t *testing.T) {
	fsys := memFS(t, map[string]string{
		SiteFile:        testSite,
		"blog/bueno.md": post("Bueno", "2024-01-01", false),
	})
	s := NewStore(fsys, nil)
	require.NoError(t, s.Load())

	require.NoError(t, afero.WriteFile(fsys, "blog/malo.md", []byte("---\ntitle: sin fecha\ndescription: d\n---\n"), 0o644))
	err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blog/malo.md")

	assert.Len(t, s.Posts(), 1)
}

func TestStore_InvalidSite(t *testing.T) {
	fsys := memFS(t, map[string]string{
		SiteFile: "name: Test\nhero:\n  - phrase: sin imagen\n",
	})
	err := NewStore(fsys, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), SiteFile)
}

func TestStore_DuplicateSlugs(t *testing.T) {
	fsys := memFS(t, map[string]string{
		SiteFile:      testSite,
		"blog/Año.md": post("A", "2024-01-01", false),
		"blog/ano.md": post("B", "2024-01-02", false),
	})
	err := NewStore(fsys, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `slug "ano"`)
}

func TestStore_MissingBlogDirIsEmpty(t *testing.T) {
	s := NewStore(memFS(t, map[string]string{SiteFile: testSite}), nil)
	require.NoError(t, s.Load())
	assert.Empty(t, s.Posts())
}

func TestOpenFS_Defaults(t *testing.T) {
	s := NewStore(OpenFS(""), nil)
	require.NoError(t, s.Load(), "embedded content must be valid")

	assert.NotEmpty(t, s.Site().Hero)
	assert.NotEmpty(t, s.Site().Testimonials)
	for _, p := range s.Posts() {
		assert.False(t, p.Draft)
	}
	assert.Less(t, len(s.Posts()), len(s.AllPosts()), "defaults include a draft")
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SiteFile), []byte(testSite), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, BlogDir), 0o755))

	s := NewStore(OpenFS(dir), nil)
	require.NoError(t, s.Load())

	var reloads atomic.Int32
	s.OnReload(func() { reloads.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx, dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, BlogDir, "nuevo.md"), []byte(post("Nuevo", "2024-01-01", false)), 0o644))

	require.Eventually(t, func() bool {
		return len(s.Posts()) == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, reloads.Load(), int32(1))
}
