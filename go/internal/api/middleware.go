package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/time/rate"
)

// HeaderRequestID carries the request id on requests and responses
const HeaderRequestID = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or assigns a new uuid, echoes it
// on the response and attaches it to the request logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		logger := zerolog.Ctx(r.Context())
		logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id)
		})
		next.ServeHTTP(w, r)
	})
}

// AccessLog logs one line per request at Info, Warn for 4xx and Error for 5xx
func AccessLog() func(http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		event := hlog.FromRequest(r).Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = hlog.FromRequest(r).Error()
		case status >= http.StatusBadRequest:
			event = hlog.FromRequest(r).Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
}

// ipLimiter hands out one token bucket per client IP. Buckets idle for
// longer than idleTTL are swept, at most once per idleTTL.
type ipLimiter struct {
	mu        sync.Mutex
	clients   map[string]*ipClient
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	clock     clockwork.Clock
}

type ipClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(requestsPerWindow int, window time.Duration, clock clockwork.Clock) *ipLimiter {
	burst := requestsPerWindow / 2
	if burst < 1 {
		burst = 1
	}
	// an idle bucket refills completely within one window
	idleTTL := window
	if idleTTL < time.Minute {
		idleTTL = time.Minute
	}
	return &ipLimiter{
		clients:   make(map[string]*ipClient),
		rate:      rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:     burst,
		idleTTL:   idleTTL,
		lastSweep: clock.Now(),
		clock:     clock,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) >= l.idleTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &ipClient{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit rejects clients exceeding requestsPerWindow with a connect
// resource_exhausted error.
func RateLimit(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newIPLimiter(requestsPerWindow, window, clockwork.NewRealClock())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				hlog.FromRequest(r).Warn().Str("ip", ip).Msg("rate limited")
				w.Header().Set("Retry-After", "60")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"code":"resource_exhausted","message":"Too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
