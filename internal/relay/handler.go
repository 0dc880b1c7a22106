package relay

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Relay validates a browser call and forwards it to the upstream with
// the caller's key as the bearer credential. Validation failures answer
// before any upstream call; upstream status and body pass through
// unchanged.
func (h *handler) Relay(c *gin.Context) {
	origin := c.GetHeader("Origin")

	if c.Request.Method == http.MethodOptions {
		h.preflight(c, origin)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Rejections for unlisted origins carry no CORS headers, so the
	// browser blocks the response either way.
	if !h.originAllowed(origin) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	if !h.allow(origin) {
		h.jsonError(c, http.StatusTooManyRequests, "Rate limit exceeded", origin)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		h.jsonError(c, http.StatusBadRequest, "Invalid JSON body", origin)
		return
	}

	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		h.jsonError(c, http.StatusBadRequest, "Missing API Key", origin)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.cfg.UpstreamURL, bytes.NewReader(body))
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, err.Error(), origin)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "relay: upstream call failed: %v", err)
		h.jsonError(c, http.StatusInternalServerError, err.Error(), origin)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, err.Error(), origin)
		return
	}

	c.Header("Access-Control-Allow-Origin", origin)
	c.Data(resp.StatusCode, "application/json", data)
}

// preflight answers the CORS preflight with a fixed header set, or 403
// without CORS headers when the origin is not allow-listed.
func (h *handler) preflight(c *gin.Context, origin string) {
	if !h.originAllowed(origin) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	c.Header("Access-Control-Allow-Origin", origin)
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
	c.Header("Access-Control-Max-Age", "86400")
	c.Status(http.StatusNoContent)
}

func (h *handler) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}

// allow checks the per-origin limiter, lazily creating one on first
// sight of an origin.
func (h *handler) allow(origin string) bool {
	if h.cfg.RateLimitPerMin <= 0 {
		return true
	}
	limiter, ok := h.limiters.Get(origin)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(h.cfg.RateLimitPerMin)/60.0), h.cfg.RateLimitPerMin)
		h.limiters.Add(origin, limiter)
	}
	return limiter.Allow()
}

func (h *handler) jsonError(c *gin.Context, status int, message, origin string) {
	c.Header("Access-Control-Allow-Origin", origin)
	c.JSON(status, gin.H{"error": message})
}
