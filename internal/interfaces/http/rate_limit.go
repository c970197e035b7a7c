package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/internal/infrastructure/metrics"
)

// limiterIdleTTL tiempo tras el cual se descarta el limitador de una IP inactiva.
const limiterIdleTTL = 15 * time.Minute

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter limita intentos de login por IP de cliente (token bucket por IP).
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	every    rate.Limit
	burst    int
	now      func() time.Time
}

// NewLoginLimiter permite perMinute intentos por minuto y ráfagas de burst por IP.
func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &LoginLimiter{
		limiters: make(map[string]*ipLimiter),
		every:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consume un intento de la IP.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		l.prune(now)
		entry = &ipLimiter{lim: rate.NewLimiter(l.every, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.lim.AllowN(now, 1)
}

func (l *LoginLimiter) prune(now time.Time) {
	for ip, e := range l.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(l.limiters, ip)
		}
	}
}

// Middleware responde 429 cuando la IP agotó sus intentos.
func (l *LoginLimiter) Middleware() fiber.Handler {
	retryAfter := strconv.Itoa(int(time.Duration(float64(time.Second) / float64(l.every)).Seconds()))
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			metrics.ObserveLogin("throttled")
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "muitas tentativas de login, tente novamente em instantes",
				Code:  "RATE_LIMITED",
			})
		}
		return c.Next()
	}
}
