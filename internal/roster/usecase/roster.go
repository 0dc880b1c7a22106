package usecase

import (
	"context"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/roster"
	"grassroots-tasks/internal/taskboard"
)

// poolDocument reads the fallback roster issue for a pool label. The
// issue's body is a roster document in the same dialect.
func (uc *implUseCase) poolDocument(ctx context.Context, label string) *model.Document {
	if uc.pools == nil {
		return nil
	}
	task, err := uc.pools.PoolIssue(ctx, label)
	if err != nil {
		uc.l.Warnf(ctx, "roster: pool lookup for %s failed: %v", label, err)
		return nil
	}
	if task == nil {
		return nil
	}
	return &model.Document{
		Body:      task.Body,
		HTMLURL:   task.HTMLURL,
		UpdatedAt: task.UpdatedAt,
	}
}

// People fetches and parses the member roster. A missing document is
// not an error: the pool issue labeled 人池 serves as a fallback
// source, and without one the output carries a nil Source and an
// empty list.
func (uc *implUseCase) People(ctx context.Context) (roster.PeopleOutput, error) {
	doc := uc.repo.PeopleDocument(ctx)
	if doc == nil {
		doc = uc.poolDocument(ctx, taskboard.LabelPeoplePool)
	}
	if doc == nil {
		uc.l.Warnf(ctx, "roster: people document unavailable")
		return roster.PeopleOutput{People: []model.Person{}}, nil
	}

	people := roster.ParsePeople(doc.Body, uc.opt)
	uc.l.Infof(ctx, "roster: parsed %d people", len(people))

	return roster.PeopleOutput{People: people, Source: doc}, nil
}

// Resources fetches and parses the resource roster. Resource parsing
// is strict: without the recognized section the result is empty.
func (uc *implUseCase) Resources(ctx context.Context) (roster.ResourcesOutput, error) {
	doc := uc.repo.ResourceDocument(ctx)
	if doc == nil {
		doc = uc.poolDocument(ctx, taskboard.LabelResourcePool)
	}
	if doc == nil {
		uc.l.Warnf(ctx, "roster: resource document unavailable")
		return roster.ResourcesOutput{Resources: []model.Resource{}}, nil
	}

	resources := roster.ParseResources(doc.Body, roster.ParseOptions{StrictSectionMatch: true})
	uc.l.Infof(ctx, "roster: parsed %d resources", len(resources))

	return roster.ResourcesOutput{Resources: resources, Source: doc}, nil
}
