package app

import (
	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/modules/contact"
	"github.com/impacto/site/internal/modules/leadapi"
	"github.com/impacto/site/internal/modules/livecarousel"
	"github.com/impacto/site/internal/modules/notify"
	"github.com/impacto/site/internal/modules/site"
	"github.com/impacto/site/internal/pubsub"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Config     config.Provider
	Content    *content.Store
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
}

func siteDeps(deps Dependencies) site.Dependencies {
	return site.Dependencies{Config: deps.Config, Content: deps.Content}
}

func contactDeps(deps Dependencies) contact.Dependencies {
	return contact.Dependencies{Config: deps.Config, Content: deps.Content}
}

func carouselDeps(deps Dependencies) livecarousel.Dependencies {
	return livecarousel.Dependencies{Config: deps.Config, Content: deps.Content}
}

func leadapiDeps(deps Dependencies) leadapi.Dependencies {
	return leadapi.Dependencies{Config: deps.Config, Publisher: deps.Publisher}
}

func notifyDeps(deps Dependencies) notify.Dependencies {
	return notify.Dependencies{Config: deps.Config, Subscriber: deps.Subscriber}
}
