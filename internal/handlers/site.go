package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/leads"
	"github.com/impacto/site/web/src/templates/components"
	"github.com/impacto/site/web/src/templates/layouts"
	"github.com/impacto/site/web/src/templates/pages"
)

// latestPosts is how many posts the landing page previews.
const latestPosts = 3

// SiteHandler serves the content pages.
type SiteHandler struct {
	content *content.Store
	forms   *leads.Forms
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(store *content.Store, forms *leads.Forms) *SiteHandler {
	return &SiteHandler{content: store, forms: forms}
}

// HomeGet renders the landing page.
func (h *SiteHandler) HomeGet(c echo.Context) error {
	site := h.content.Site()
	latest := h.content.Posts()
	if len(latest) > latestPosts {
		latest = latest[:latestPosts]
	}
	return renderPage(c, http.StatusOK, layouts.Page{Description: site.Description}, pages.Home(pages.HomeData{
		Site:     site,
		Latest:   latest,
		LeadForm: formState(c, h.forms),
	}))
}

// AboutGet renders the company page.
func (h *SiteHandler) AboutGet(c echo.Context) error {
	site := h.content.Site()
	return renderPage(c, http.StatusOK, layouts.Page{Title: "Nosotros", Description: site.About.Sub}, pages.About(site))
}

// BlogGet lists the published posts, newest first.
func (h *SiteHandler) BlogGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, layouts.Page{
		Title:       "Blog",
		Description: "Artículos sobre tecnología, escalabilidad y automatización.",
	}, pages.Blog(h.content.Posts()))
}

// PostGet renders one published post.
func (h *SiteHandler) PostGet(c echo.Context) error {
	p, err := h.content.Post(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return renderPage(c, http.StatusOK, layouts.Page{Title: p.Title, Description: p.Description, Path: "/blog"}, pages.Post(p))
}

// formState is the lead form as a freshly loaded page shows it: idle, or
// loading while this visitor still has a submission in flight.
func formState(c echo.Context, forms *leads.Forms) components.LeadFormState {
	st := components.LeadFormState{Status: leads.StatusIdle}
	if forms != nil && forms.For(VisitorID(c)).Status() == leads.StatusLoading {
		st.Status = leads.StatusLoading
	}
	return st
}
