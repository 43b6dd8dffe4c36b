package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// RateLimitConfig carries the token bucket settings for the two tiers of
// limiting: general API traffic and the stricter login tier.
type RateLimitConfig struct {
	GeneralRate  rate.Limit
	GeneralBurst int
	LoginRate    rate.Limit
	LoginBurst   int

	// CleanupInterval controls how often idle client entries are dropped.
	CleanupInterval time.Duration
}

// DefaultRateLimitConfig returns the settings used when none are configured.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		GeneralRate:     rate.Limit(20),
		GeneralBurst:    40,
		LoginRate:       rate.Limit(1),
		LoginBurst:      5,
		CleanupInterval: 5 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter tracks per-client token buckets keyed by client IP.
type RateLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	general  map[string]*clientLimiter
	login    map[string]*clientLimiter
	stopOnce sync.Once
	stop     chan struct{}
}

// NewRateLimiter builds a limiter and starts its idle-entry janitor.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		config:  config,
		general: make(map[string]*clientLimiter),
		login:   make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.config.CleanupInterval)
			rl.mu.Lock()
			for key, cl := range rl.general {
				if cl.lastAccess.Before(cutoff) {
					delete(rl.general, key)
				}
			}
			for key, cl := range rl.login {
				if cl.lastAccess.Before(cutoff) {
					delete(rl.login, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) getLimiter(pool map[string]*clientLimiter, key string, limit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := pool[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(limit, burst)
	pool[key] = &clientLimiter{limiter: limiter, lastAccess: time.Now()}
	return limiter
}

func abortRateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Envelope{
		Success: false,
		Error:   "Too many requests, please try again later",
	})
}

// General limits overall API traffic per client IP.
func (rl *RateLimiter) General() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(rl.general, c.ClientIP(), rl.config.GeneralRate, rl.config.GeneralBurst)
		if !limiter.Allow() {
			abortRateLimited(c)
			return
		}
		c.Next()
	}
}

// Login applies the stricter bucket used for credential endpoints.
func (rl *RateLimiter) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(rl.login, c.ClientIP(), rl.config.LoginRate, rl.config.LoginBurst)
		if !limiter.Allow() {
			abortRateLimited(c)
			return
		}
		c.Next()
	}
}
