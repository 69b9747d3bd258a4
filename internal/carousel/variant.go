package carousel

import "time"

// Default auto-advance intervals.
const (
	DefaultHeroInterval        = 6000 * time.Millisecond
	DefaultTestimonialInterval = 8000 * time.Millisecond
)

// Variant describes the behavioural differences between carousel widgets.
type Variant struct {
	Name         string
	Interval     time.Duration
	Swipe        bool
	PauseOnHover bool
}

// HeroVariant is the full width image slider: swipe navigation, no hover pause.
func HeroVariant(interval time.Duration) Variant {
	if interval <= 0 {
		interval = DefaultHeroInterval
	}
	return Variant{Name: "hero", Interval: interval, Swipe: true}
}

// TestimonialVariant is the quote slider: pauses while hovered, no swipe.
func TestimonialVariant(interval time.Duration) Variant {
	if interval <= 0 {
		interval = DefaultTestimonialInterval
	}
	return Variant{Name: "testimonials", Interval: interval, PauseOnHover: true}
}

// HeroSlide is one slide of the hero carousel.
type HeroSlide struct {
	Image   string `yaml:"image" json:"image" validate:"required"`
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Phrase  string `yaml:"phrase" json:"phrase" validate:"required"`
	Sub     string `yaml:"sub,omitempty" json:"sub,omitempty"`
	CTAText string `yaml:"ctaText,omitempty" json:"ctaText,omitempty"`
	CTAHref string `yaml:"ctaHref,omitempty" json:"ctaHref,omitempty"`
	Tagline string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
}

// AltText returns the image alternative text, falling back to the phrase.
func (s HeroSlide) AltText() string {
	if s.Alt != "" {
		return s.Alt
	}
	return s.Phrase
}

// Testimonial is one slide of the testimonial carousel.
type Testimonial struct {
	Quote  string `yaml:"quote" json:"quote" validate:"required"`
	Author string `yaml:"author" json:"author" validate:"required"`
	Role   string `yaml:"role,omitempty" json:"role,omitempty"`
	Avatar string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}
