package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// BlogDir holds the Markdown posts, relative to the content root.
	BlogDir = "blog"
	// SiteFile is the site document, relative to the content root.
	SiteFile = "site.yaml"
)

type snapshot struct {
	posts  []*Post // newest first, drafts included
	bySlug map[string]*Post
	site   *Site
}

// Store serves the content collections. Reads are lock free; Load swaps in a
// complete new snapshot or leaves the previous one untouched.
type Store struct {
	fs     afero.Fs
	logger *slog.Logger
	snap   atomic.Pointer[snapshot]

	mu        sync.Mutex
	listeners []func()
}

// NewStore creates a store reading from fsys. Call Load before use.
func NewStore(fsys afero.Fs, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{fs: fsys, logger: logger.With("component", "content")}
	s.snap.Store(&snapshot{bySlug: map[string]*Post{}, site: &Site{}})
	return s
}

// OpenFS returns the content filesystem: the embedded defaults when dir is
// empty, otherwise dir on disk.
func OpenFS(dir string) afero.Fs {
	if dir == "" {
		sub, err := fs.Sub(defaultsFS, "defaults")
		if err != nil {
			panic(err)
		}
		return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
	}
	return afero.NewBasePathFs(afero.NewOsFs(), dir)
}

// OnReload registers fn to run after every successful Load.
func (s *Store) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load reads every collection. All files are checked and every problem is
// reported; on error the current content stays in place.
func (s *Store) Load() error {
	next, err := s.read()
	if err != nil {
		return err
	}
	s.snap.Store(next)
	s.logger.Info("Content loaded", "posts", len(next.posts), "hero_slides", len(next.site.Hero), "testimonials", len(next.site.Testimonials))

	s.mu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
	return nil
}

func (s *Store) read() (*snapshot, error) {
	var errs []error

	site, err := s.readSite()
	if err != nil {
		errs = append(errs, err)
	}

	posts, postErrs := s.readPosts()
	errs = append(errs, postErrs...)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	next := &snapshot{posts: posts, bySlug: make(map[string]*Post, len(posts)), site: site}
	for _, p := range posts {
		next.bySlug[p.Slug] = p
	}
	return next, nil
}

func (s *Store) readSite() (*Site, error) {
	data, err := afero.ReadFile(s.fs, SiteFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SiteFile, err)
	}
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("%s: %w", SiteFile, err)
	}
	if err := validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%s: %w", SiteFile, err)
	}
	return &site, nil
}

func (s *Store) readPosts() ([]*Post, []error) {
	entries, err := afero.ReadDir(s.fs, BlogDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("%s: %w", BlogDir, err)}
	}

	var (
		posts []*Post
		errs  []error
		seen  = map[string]string{}
	)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !isMarkdown(name) {
			continue
		}
		file := path.Join(BlogDir, name)
		data, err := afero.ReadFile(s.fs, file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		slug := Slugify(name)
		if other, dup := seen[slug]; dup {
			errs = append(errs, fmt.Errorf("%s: slug %q already used by %s", file, slug, other))
			continue
		}
		seen[slug] = file

		post, err := ParsePost(slug, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, errs
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// Posts returns the published posts, newest first.
func (s *Store) Posts() []*Post {
	all := s.snap.Load().posts
	out := make([]*Post, 0, len(all))
	for _, p := range all {
		if !p.Draft {
			out = append(out, p)
		}
	}
	return out
}

// AllPosts returns every post including drafts, newest first.
func (s *Store) AllPosts() []*Post {
	return append([]*Post(nil), s.snap.Load().posts...)
}

// Post returns the published post with the given slug.
func (s *Store) Post(slug string) (*Post, error) {
	p, ok := s.snap.Load().bySlug[slug]
	if !ok || p.Draft {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return p, nil
}

// Site returns the site document.
func (s *Store) Site() *Site {
	return s.snap.Load().site
}
