package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/session"
	pkgGithub "grassroots-tasks/pkg/github"
	pkgLog "grassroots-tasks/pkg/log"
)

const (
	profileCacheSize = 256
	profileCacheTTL  = 5 * time.Minute
)

type Middleware struct {
	l      pkgLog.Logger
	store  session.Store
	client *pkgGithub.Client

	// Validated token → profile, so a client presenting a raw token on
	// every call does not cost one upstream round-trip per request.
	profiles *expirable.LRU[string, model.Profile]
}

func New(l pkgLog.Logger, store session.Store, client *pkgGithub.Client) Middleware {
	return Middleware{
		l:        l,
		store:    store,
		client:   client,
		profiles: expirable.NewLRU[string, model.Profile](profileCacheSize, nil, profileCacheTTL),
	}
}
