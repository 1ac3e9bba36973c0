package handler

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ipRateLimiter mantiene un token bucket por IP. Se usa para frenar
// fuerza bruta contra /login: 5 intentos de golpe y después uno cada
// tres minutos (equivale a 5 por ventana de 15).
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// LoginRateLimit limita intentos de login por IP.
func LoginRateLimit() func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(5.0/900.0, 5)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.allow(ip) {
				respondFail(w, http.StatusTooManyRequests, "Too many login attempts, please try again after 15 minutes.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
