package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Profile is the remote identity of an authenticated user.
type Profile struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
}

// Scope carries the caller's identity through a request.
// An empty Login means the request is anonymous.
type Scope struct {
	Token   string
	Profile Profile
}

// Authenticated reports whether the scope carries a validated identity.
func (s Scope) Authenticated() bool {
	return s.Token != "" && s.Profile.Login != ""
}
