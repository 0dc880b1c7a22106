package roster

import "grassroots-tasks/internal/model"

// PeopleOutput is the parsed member roster plus its source metadata.
// Source is nil when the document could not be fetched; People is then
// empty, never nil.
type PeopleOutput struct {
	People []model.Person
	Source *model.Document
}

// ResourcesOutput is the parsed resource roster plus its source metadata.
type ResourcesOutput struct {
	Resources []model.Resource
	Source    *model.Document
}
