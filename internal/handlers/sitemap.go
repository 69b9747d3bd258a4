package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/content"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// staticPages are listed in the sitemap ahead of the blog posts.
var staticPages = []string{"/", "/blog", "/about", ContactPath}

// URLSet is the sitemap document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one sitemap entry.
type SitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapHandler serves /sitemap.xml and /robots.txt.
type SitemapHandler struct {
	content *content.Store
	siteURL string
}

// NewSitemapHandler creates a SitemapHandler publishing URLs under siteURL.
func NewSitemapHandler(store *content.Store, siteURL string) *SitemapHandler {
	return &SitemapHandler{content: store, siteURL: strings.TrimRight(siteURL, "/")}
}

// Sitemap builds the URL set: static pages, then published posts.
func (h *SitemapHandler) Sitemap() URLSet {
	set := URLSet{Xmlns: sitemapNS}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, SitemapURL{Loc: h.siteURL + p})
	}
	for _, p := range h.content.Posts() {
		mod := p.PublishedAt
		if p.UpdatedAt != nil {
			mod = *p.UpdatedAt
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:     h.siteURL + "/blog/" + p.Slug,
			LastMod: mod.Format("2006-01-02"),
		})
	}
	return set
}

// SitemapGet renders sitemap.xml.
func (h *SitemapHandler) SitemapGet(c echo.Context) error {
	return c.XML(http.StatusOK, h.Sitemap())
}

// RobotsGet renders robots.txt pointing at the sitemap.
func (h *SitemapHandler) RobotsGet(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.siteURL))
}
