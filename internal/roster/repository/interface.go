package repository

import (
	"context"

	"grassroots-tasks/internal/model"
)

// DocumentRepository fetches the roster source documents.
// Fetch failures are swallowed at this boundary: a nil Document (and
// nil error) means "no data" and the caller renders accordingly.
type DocumentRepository interface {
	PeopleDocument(ctx context.Context) *model.Document
	ResourceDocument(ctx context.Context) *model.Document
}
