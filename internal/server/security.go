package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/metrics"
)

// TokenParser validates an access token and returns its user id
type TokenParser interface {
	Parse(token string) (string, error)
}

// AuthMiddleware authenticates requests by Bearer token, or by API key plus
// X-User-ID for trusted callers. Admin routes accept only the API key.
func AuthMiddleware(apiKey string, tokens TokenParser, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Allow public access to documentation and health check endpoints
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			reject := func(reason string) {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				metrics.AuthFailuresTotal.Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"reason", reason,
					"path", r.URL.Path,
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			}

			admin := strings.HasPrefix(r.URL.Path, AdminPathPrefix)

			if providedKey := r.Header.Get(HeaderAPIKey); providedKey != "" {
				// Use constant time comparison to prevent timing attacks
				if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
					reject("invalid api key")
					return
				}
				userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
				if userID == "" && !admin {
					reject("missing user id")
					return
				}
				ctx := r.Context()
				if userID != "" {
					ctx = auth.WithUserID(ctx, userID)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if admin {
				reject("admin route without api key")
				return
			}

			header := r.Header.Get(HeaderAuthorization)
			if !strings.HasPrefix(header, BearerPrefix) || tokens == nil {
				reject("missing credentials")
				return
			}

			userID, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix)))
			if err != nil {
				reject("invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks failed authentication per client and
// alerts once a client crosses the threshold within the window
type SuspiciousActivityDetector struct {
	mu             sync.Mutex
	failedAuthByIP map[string]int
	lastResetTime  time.Time
	window         time.Duration
	threshold      int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP: make(map[string]int),
		lastResetTime:  time.Now(),
		window:         FailedAuthWindow,
		threshold:      FailedAuthAlertThreshold,
	}
}

// RecordFailedAuth records a failed authentication attempt and returns the
// client's count in the current window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastResetTime) > s.window {
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
	s.failedAuthByIP[ip]++

	count := s.failedAuthByIP[ip]
	if count >= s.threshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// RateLimiter keeps one token bucket per client. Idle clients expire from
// the registry so it stays bounded.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute requests per client with the given burst
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimitPerMinute
	}
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](RateLimiterCapacity, nil, RateLimiterIdleTTL),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}
}

// Allow reports whether the client may make a request now
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// Re-adding refreshes the idle expiry
	l.limiters.Add(ip, limiter)
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimitMiddleware rejects clients that exceed their request rate
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !limiter.Allow(ip) {
				metrics.RateLimitedTotal.Inc()
				logger.FromContext(r.Context()).Warn(SecurityAlertRateLimit, "ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop that reached our trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPathPrefix) {
				w.Header().Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
