package model

// Person is one member record parsed from the people roster document.
// A record exists only when introduced by a level-3 heading inside the
// recognized members section; missing fields stay empty strings.
type Person struct {
	Name    string `json:"name"`
	GitHub  string `json:"github"`
	Joined  string `json:"joined"`
	Skills  string `json:"skills"`
	Time    string `json:"time"`
	Current string `json:"current"`
	History string `json:"history"`
}

// ResourceLink is one labeled sub-link of a resource.
type ResourceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Resource is one entry parsed from the resource roster document.
// When no explicit primary link is set but sub-links exist, the first
// sub-link's URL becomes Link.
type Resource struct {
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Description  string         `json:"description"`
	Status       string         `json:"status"`
	Owner        string         `json:"owner"`
	Instructions string         `json:"instructions"`
	Link         string         `json:"link"`
	Links        []ResourceLink `json:"links"`
}

// Document is a fetched roster document with its source metadata.
type Document struct {
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url"`
	UpdatedAt string `json:"updated_at"`
}
