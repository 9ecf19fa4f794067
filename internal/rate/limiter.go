package rate

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterMap provides per-IP rate limiting with TTL eviction of idle entries.
type LimiterMap struct {
	mu      sync.Mutex
	clients map[string]*client
	rpm     int
	burst   int
	ttl     time.Duration
	stopCh  chan struct{}
}

// NewLimiterMap creates a LimiterMap with a background cleanup goroutine.
func NewLimiterMap(rpm, burst int, ttl time.Duration) *LimiterMap {
	lm := &LimiterMap{
		clients: make(map[string]*client),
		rpm:     rpm,
		burst:   burst,
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
	go lm.reaper()
	return lm
}

func (l *LimiterMap) reaper() {
	t := time.NewTicker(l.ttl)
	defer t.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case now := <-t.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if now.Sub(c.lastSeen) > l.ttl {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *LimiterMap) Stop() { close(l.stopCh) }

func (l *LimiterMap) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.clients[ip]; ok {
		c.lastSeen = time.Now()
		return c.limiter
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.rpm)), l.burst)
	l.clients[ip] = &client{limiter: lim, lastSeen: time.Now()}
	return lim
}

// Allow returns true if the request from the given IP should be allowed.
func (l *LimiterMap) Allow(ip string) bool {
	return l.get(ip).Allow()
}

// IPFromRequest extracts the client IP, preferring the first entry of
// X-Forwarded-For when present.
func IPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
