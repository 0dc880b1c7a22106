package middleware

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/model"
)

const scopeKey = "scope"

// SetScopeToContext attaches the caller's scope to the request.
func SetScopeToContext(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// ScopeFromContext returns the caller's scope. An anonymous request
// yields the zero scope.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
