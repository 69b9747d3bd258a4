package app

import (
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/modules/contact"
	"github.com/impacto/site/internal/modules/leadapi"
	"github.com/impacto/site/internal/modules/livecarousel"
	"github.com/impacto/site/internal/modules/notify"
	"github.com/impacto/site/internal/modules/site"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	mods := []module.Module{
		contact.New(contactDeps(deps)),
		site.New(siteDeps(deps)),
		livecarousel.New(carouselDeps(deps)),
	}

	// The bundled lead backend and its notifications are only mounted when
	// the site serves its own API.
	if deps.Config.GetLeadsAPIEnabled() {
		mods = append(mods,
			leadapi.New(leadapiDeps(deps)),
			notify.New(notifyDeps(deps)),
		)
	}
	return mods
}
