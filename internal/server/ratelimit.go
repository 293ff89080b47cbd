package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimitConfig holds shuffle rate limiting configuration.
type RateLimitConfig struct {
	MaxAttempts int           // Maximum shuffles per window (default: 30)
	Window      time.Duration // Sliding window length (default: 1 minute)
}

// DefaultRateLimitConfig returns the default rate limiting configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxAttempts: 30,
		Window:      time.Minute,
	}
}

// rateLimiter is a per-client sliding window limiter.
type rateLimiter struct {
	mu     sync.Mutex
	config RateLimitConfig
	now    func() time.Time

	// attempts tracks timestamps of shuffles per client IP
	attempts map[string][]time.Time
}

// newRateLimiter creates a new rate limiter with the given configuration.
func newRateLimiter(config RateLimitConfig) *rateLimiter {
	defaults := DefaultRateLimitConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.Window <= 0 {
		config.Window = defaults.Window
	}

	return &rateLimiter{
		config:   config,
		now:      time.Now,
		attempts: make(map[string][]time.Time),
	}
}

// checkResult represents the result of a rate limit check.
type checkResult struct {
	Allowed    bool
	Attempts   int           // Attempts in the window, including this one if allowed
	RetryAfter time.Duration // How long until the client can retry
}

// check records an attempt for ip if it is within the limit.
func (rl *rateLimiter) check(ip string) checkResult {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.prune(ip, now)

	if len(valid) >= rl.config.MaxAttempts {
		retryAfter := valid[0].Add(rl.config.Window).Sub(now)
		if retryAfter <= 0 {
			retryAfter = time.Second
		}
		return checkResult{
			Allowed:    false,
			Attempts:   len(valid),
			RetryAfter: retryAfter,
		}
	}

	rl.attempts[ip] = append(valid, now)
	return checkResult{Allowed: true, Attempts: len(valid) + 1}
}

// prune drops attempts outside the window. Must be called with mu held.
func (rl *rateLimiter) prune(ip string, now time.Time) []time.Time {
	timestamps, ok := rl.attempts[ip]
	if !ok {
		return nil
	}

	windowStart := now.Add(-rl.config.Window)
	valid := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	if len(valid) == 0 {
		delete(rl.attempts, ip)
		return nil
	}
	rl.attempts[ip] = valid
	return valid
}

// cleanup removes clients with no attempts left in the window.
func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip := range rl.attempts {
		rl.prune(ip, now)
	}
}

// clients returns the number of tracked client IPs.
func (rl *rateLimiter) clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.attempts)
}

// extractIP extracts the client IP from the request.
// It checks X-Forwarded-For and X-Real-IP headers first (for reverse proxy scenarios),
// then falls back to the remote address.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// "client, proxy1, proxy2"
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
