package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	connections int
	messages    *rate.Limiter
}

// IPRateLimiter tracks per-IP connection counts and message rates.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	maxConnsPerIP int
	msgRate       rate.Limit
	msgBurst      int
	stop          chan struct{}
	stopOnce      sync.Once
}

// NewIPRateLimiter creates a rate limiter.
//   - maxConnsPerIP: max simultaneous WebSocket connections per IP
//   - msgsPerSecond: sustained messages per second per IP, also the burst
func NewIPRateLimiter(maxConnsPerIP, msgsPerSecond int) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors:      make(map[string]*visitor),
		maxConnsPerIP: maxConnsPerIP,
		msgRate:       rate.Limit(msgsPerSecond),
		msgBurst:      msgsPerSecond,
		stop:          make(chan struct{}),
	}
	go rl.cleanup(5 * time.Minute)
	return rl
}

// visitorLocked returns the entry for ip, creating it. rl.mu must be held.
func (rl *IPRateLimiter) visitorLocked(ip string) *visitor {
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{messages: rate.NewLimiter(rl.msgRate, rl.msgBurst)}
		rl.visitors[ip] = v
	}
	return v
}

// ConnectAllowed checks if an IP can open a new connection.
// If allowed, increments the connection count and returns true.
func (rl *IPRateLimiter) ConnectAllowed(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v := rl.visitorLocked(ip)
	if v.connections >= rl.maxConnsPerIP {
		return false
	}
	v.connections++
	return true
}

// Disconnect decrements the connection count for an IP.
func (rl *IPRateLimiter) Disconnect(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		return
	}
	v.connections--
	if v.connections < 0 {
		v.connections = 0
	}
}

// MessageAllowed checks if a message from this IP is within rate limits.
func (rl *IPRateLimiter) MessageAllowed(ip string) bool {
	return rl.messageAllowedAt(ip, time.Now())
}

func (rl *IPRateLimiter) messageAllowedAt(ip string, now time.Time) bool {
	rl.mu.Lock()
	v := rl.visitorLocked(ip)
	rl.mu.Unlock()
	return v.messages.AllowN(now, 1)
}

// Connections reports how many connections ip holds.
func (rl *IPRateLimiter) Connections(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if v, ok := rl.visitors[ip]; ok {
		return v.connections
	}
	return 0
}

// Close stops the cleanup goroutine.
func (rl *IPRateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// cleanup removes entries without connections every interval.
func (rl *IPRateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

func (rl *IPRateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if v.connections <= 0 {
			delete(rl.visitors, ip)
		}
	}
}

// RealIP extracts the client IP from the request.
// Checks X-Forwarded-For (for reverse proxies) then RemoteAddr.
func RealIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if comma := strings.Index(xff, ","); comma > 0 {
			return strings.TrimSpace(xff[:comma])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
