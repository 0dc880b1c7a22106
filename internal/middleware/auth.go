package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/model"
)

const sessionIDHeader = "X-Session-ID"

// Auth resolves the caller's identity and attaches it to the request
// scope. A raw token in the Authorization header wins over a session
// ID; an unresolvable credential leaves the request anonymous, and the
// usecases decide which operations demand identity.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, ok := m.scopeFromBearer(c); ok {
			SetScopeToContext(c, sc)
			c.Next()
			return
		}

		if sessionID := c.GetHeader(sessionIDHeader); sessionID != "" {
			if sc, ok := m.store.Get(sessionID); ok {
				SetScopeToContext(c, sc)
			}
		}
		c.Next()
	}
}

func (m Middleware) scopeFromBearer(c *gin.Context) (model.Scope, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return model.Scope{}, false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return model.Scope{}, false
	}

	if profile, ok := m.profiles.Get(token); ok {
		return model.Scope{Token: token, Profile: profile}, true
	}

	user, err := m.client.ValidateToken(c.Request.Context(), token)
	if err != nil {
		m.l.Warnf(c.Request.Context(), "auth: token rejected: %v", err)
		return model.Scope{}, false
	}

	profile := model.Profile{
		Login:     user.Login,
		AvatarURL: user.AvatarURL,
		Name:      user.Name,
		HTMLURL:   user.HTMLURL,
	}
	m.profiles.Add(token, profile)
	return model.Scope{Token: token, Profile: profile}, true
}
