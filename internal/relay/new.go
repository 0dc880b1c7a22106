package relay

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "grassroots-tasks/pkg/log"
)

const (
	limiterCacheSize = 1024
	limiterCacheTTL  = 10 * time.Minute
)

// Config holds the relay settings.
type Config struct {
	// UpstreamURL is the fixed chat-completion endpoint requests are
	// forwarded to.
	UpstreamURL string

	// AllowedOrigins is the prefix-match allow-list for the Origin
	// header.
	AllowedOrigins []string

	// RateLimitPerMin caps forwarded requests per origin per minute.
	// Zero disables the limiter.
	RateLimitPerMin int
}

// Handler is the public interface for the relay.
type Handler interface {
	Relay(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	cfg Config

	httpClient *http.Client

	// Per-origin limiters; cold origins age out.
	limiters *expirable.LRU[string, *rate.Limiter]
}

// New creates a new relay handler.
func New(l pkgLog.Logger, cfg Config) Handler {
	return &handler{
		l:          l,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiters:   expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
	}
}

// RegisterRoutes maps every method and path onto the relay handler; the
// handler itself sorts preflights from forwards.
func RegisterRoutes(r *gin.Engine, h Handler) {
	r.Any("/*path", h.Relay)
}
