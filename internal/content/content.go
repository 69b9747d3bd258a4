// Package content loads the site's content collections: blog posts written
// in Markdown with YAML front matter, and the site.yaml document holding the
// hero slides, testimonials and feature blocks.
package content

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/impacto/site/internal/carousel"
)

// DescriptionMaxLen is the longest description a post may carry.
const DescriptionMaxLen = 180

var (
	// ErrNotFound is returned for unknown or draft post slugs.
	ErrNotFound = errors.New("content not found")
	// ErrNoFrontMatter is returned when a post does not open with a --- block.
	ErrNoFrontMatter = errors.New("missing front matter")
)

var validate = validator.New()

// FrontMatter is the validated metadata of a blog post.
type FrontMatter struct {
	Title       string
	Description string
	PublishedAt time.Time
	UpdatedAt   *time.Time
	Tags        []string
	Draft       bool
	HeroImage   string
}

// Post is one entry of the blog collection.
type Post struct {
	Slug string
	FrontMatter
	// HTML is the rendered Markdown body.
	HTML string
}

// Feature is a selling point shown in the features section.
type Feature struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body" validate:"required"`
	Icon  string `yaml:"icon,omitempty"`
}

// Intro is a text hero block with optional calls to action.
type Intro struct {
	Kicker           string `yaml:"kicker,omitempty"`
	Headline         string `yaml:"headline"`
	Sub              string `yaml:"sub,omitempty"`
	PrimaryCTAText   string `yaml:"primaryCtaText,omitempty"`
	PrimaryCTAHref   string `yaml:"primaryCtaHref,omitempty"`
	SecondaryCTAText string `yaml:"secondaryCtaText,omitempty"`
	SecondaryCTAHref string `yaml:"secondaryCtaHref,omitempty"`
	Align            string `yaml:"align,omitempty" validate:"omitempty,oneof=left center"`
}

// Site is the site.yaml document.
type Site struct {
	Name         string                 `yaml:"name" validate:"required"`
	Description  string                 `yaml:"description,omitempty"`
	Hero         []carousel.HeroSlide   `yaml:"hero" validate:"dive"`
	Testimonials []carousel.Testimonial `yaml:"testimonials" validate:"dive"`
	Features     []Feature              `yaml:"features" validate:"dive"`
	About        Intro                  `yaml:"about"`
	Contact      Intro                  `yaml:"contact"`
}
