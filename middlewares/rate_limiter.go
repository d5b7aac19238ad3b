package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP sliding window over the whole API.
type RateLimiter struct {
	rate      int
	interval  time.Duration
	ips       map[string][]time.Time
	lastSweep time.Time
	now       func() time.Time
	mu        sync.Mutex
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: interval,
		ips:      make(map[string][]time.Time),
		now:      time.Now,
	}
}

// NewStrictRateLimiter guards the admin passphrase: burst of 5, then one attempt per 12s.
// The limiter is shared by all callers of the route.
func NewStrictRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(12*time.Second), 5)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "too many login attempts, please wait a moment",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := rl.now()
		cutoff := now.Add(-rl.interval)
		if now.Sub(rl.lastSweep) >= rl.interval {
			rl.sweepLocked(cutoff)
			rl.lastSweep = now
		}
		valid := make([]time.Time, 0, len(rl.ips[ip])+1)
		for _, t := range rl.ips[ip] {
			if t.After(cutoff) {
				valid = append(valid, t)
			}
		}

		if len(valid) >= rl.rate {
			rl.ips[ip] = valid
			rl.mu.Unlock()
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		rl.ips[ip] = append(valid, now)
		rl.mu.Unlock()
		c.Next()
	}
}

// sweepLocked forgets clients whose whole window has expired.
func (rl *RateLimiter) sweepLocked(cutoff time.Time) {
	for ip, hits := range rl.ips {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}

// tracked reports how many clients currently hold a window.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.ips)
}
