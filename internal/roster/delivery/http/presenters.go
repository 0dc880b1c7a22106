package http

import (
	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/roster"
)

type sourceResp struct {
	HTMLURL   string `json:"html_url"`
	UpdatedAt string `json:"updated_at"`
}

type peopleResp struct {
	People []model.Person `json:"people"`
	Count  int            `json:"count"`
	Source *sourceResp    `json:"source,omitempty"`
}

type resourcesResp struct {
	Resources []model.Resource `json:"resources"`
	Count     int              `json:"count"`
	Source    *sourceResp      `json:"source,omitempty"`
}

func newSourceResp(doc *model.Document) *sourceResp {
	if doc == nil {
		return nil
	}
	return &sourceResp{HTMLURL: doc.HTMLURL, UpdatedAt: doc.UpdatedAt}
}

func newPeopleResp(out roster.PeopleOutput) peopleResp {
	return peopleResp{
		People: out.People,
		Count:  len(out.People),
		Source: newSourceResp(out.Source),
	}
}

func newResourcesResp(out roster.ResourcesOutput) resourcesResp {
	return resourcesResp{
		Resources: out.Resources,
		Count:     len(out.Resources),
		Source:    newSourceResp(out.Source),
	}
}
