package github

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/roster/repository"
	pkgGithub "grassroots-tasks/pkg/github"
	pkgLog "grassroots-tasks/pkg/log"
)

const (
	peoplePath   = "data/people.md"
	resourcePath = "data/resources.md"

	cacheSize = 8
	cacheTTL  = 2 * time.Minute
)

type implRepository struct {
	client *pkgGithub.Client
	cache  *expirable.LRU[string, *model.Document]
	l      pkgLog.Logger
}

// New creates a GitHub-backed document repository. Fetched documents
// are cached with a short TTL so repeated roster views do not hammer
// the raw-content host.
func New(client *pkgGithub.Client, l pkgLog.Logger) repository.DocumentRepository {
	return &implRepository{
		client: client,
		cache:  expirable.NewLRU[string, *model.Document](cacheSize, nil, cacheTTL),
		l:      l,
	}
}

func (r *implRepository) PeopleDocument(ctx context.Context) *model.Document {
	return r.fetch(ctx, peoplePath)
}

func (r *implRepository) ResourceDocument(ctx context.Context) *model.Document {
	return r.fetch(ctx, resourcePath)
}

// fetch loads one roster document, swallowing errors: callers get nil
// and render "no data" instead of an error page.
func (r *implRepository) fetch(ctx context.Context, path string) *model.Document {
	if doc, ok := r.cache.Get(path); ok {
		return doc
	}

	body, err := r.client.FetchDocument(ctx, path)
	if err != nil {
		r.l.Warnf(ctx, "document repository: failed to fetch %s: %v", path, err)
		return nil
	}

	doc := &model.Document{
		Body:      body,
		HTMLURL:   r.client.FileHTMLURL(path),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	r.cache.Add(path, doc)
	return doc
}
