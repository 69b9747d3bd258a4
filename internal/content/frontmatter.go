package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	openDelim  = "---\n"
	closeDelim = "\n---"
	bom        = "\xef\xbb\xbf"
)

// rawFrontMatter mirrors the YAML keys. Dates stay strings until parsed so
// both quoted and bare values are accepted.
type rawFrontMatter struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required,max=180"`
	PublishedAt string   `yaml:"publishedAt" validate:"required"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
	HeroImage   string   `yaml:"heroImage"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// splitFrontMatter separates the YAML block from the Markdown body.
func splitFrontMatter(src []byte) (meta, body []byte, err error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.TrimPrefix(text, bom)
	if !strings.HasPrefix(text, openDelim) {
		return nil, nil, ErrNoFrontMatter
	}
	rest := text[len(openDelim):]

	// An empty block closes on the very first line.
	if rest == "---" || strings.HasPrefix(rest, openDelim) {
		return nil, []byte(strings.TrimPrefix(rest[3:], "\n")), nil
	}

	end := strings.Index(rest, closeDelim)
	if end < 0 {
		return nil, nil, fmt.Errorf("%w: unterminated block", ErrNoFrontMatter)
	}
	meta = []byte(rest[:end])
	body = []byte(strings.TrimPrefix(rest[end+len(closeDelim):], "\n"))
	return meta, body, nil
}

// ParseFrontMatter decodes and validates the metadata of a post.
func ParseFrontMatter(meta []byte) (FrontMatter, error) {
	var raw rawFrontMatter
	if err := yaml.Unmarshal(meta, &raw); err != nil {
		return FrontMatter{}, fmt.Errorf("failed to decode front matter: %w", err)
	}
	if err := validate.Struct(&raw); err != nil {
		return FrontMatter{}, fmt.Errorf("invalid front matter: %w", err)
	}

	fm := FrontMatter{
		Title:       raw.Title,
		Description: raw.Description,
		Tags:        raw.Tags,
		Draft:       raw.Draft,
		HeroImage:   raw.HeroImage,
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	published, err := parseDate(raw.PublishedAt)
	if err != nil {
		return FrontMatter{}, fmt.Errorf("publishedAt: %w", err)
	}
	fm.PublishedAt = published

	if raw.UpdatedAt != "" {
		updated, err := parseDate(raw.UpdatedAt)
		if err != nil {
			return FrontMatter{}, fmt.Errorf("updatedAt: %w", err)
		}
		fm.UpdatedAt = &updated
	}
	return fm, nil
}

// ParsePost parses a Markdown file with front matter into a Post.
func ParsePost(slug string, src []byte) (*Post, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}
	fm, err := ParseFrontMatter(meta)
	if err != nil {
		return nil, err
	}
	html, err := RenderMarkdown(body)
	if err != nil {
		return nil, err
	}
	return &Post{Slug: slug, FrontMatter: fm, HTML: html}, nil
}
