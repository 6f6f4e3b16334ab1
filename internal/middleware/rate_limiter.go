package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"expenseease/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10

	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterRegistry keeps one token bucket per client IP. Entries expire after
// visitorTTL so the map stays bounded under IP churn.
type limiterRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newLimiterRegistry(rps, burst int) *limiterRegistry {
	return &limiterRegistry{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (r *limiterRegistry) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (r *limiterRegistry) evictStale() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, v := range r.visitors {
		if time.Since(v.lastSeen) > visitorTTL {
			delete(r.visitors, ip)
		}
	}
}

func (r *limiterRegistry) cleanupLoop() {
	for {
		time.Sleep(cleanupInterval)
		r.evictStale()
	}
}

// RateLimiter limits requests per client IP at the default rate.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(defaultRequestsPerSecond, defaultBurstSize)
}

// RateLimiterWithConfig limits requests per client IP. Each middleware
// instance carries its own registry, so two routes can be limited at
// different rates.
func RateLimiterWithConfig(rps, burst int) echo.MiddlewareFunc {
	registry := newLimiterRegistry(rps, burst)
	go registry.cleanupLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.allow(clientIP(c)) {
				resp := errors.NewErrorResponse(errors.SystemRateLimitExceeded, GetTraceID(c))
				return c.JSON(http.StatusTooManyRequests, resp)
			}
			return next(c)
		}
	}
}

// clientIP prefers the proxy-set forwarding headers over the socket address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
