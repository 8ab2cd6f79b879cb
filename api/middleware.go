package api

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// LatencyMiddleware delays every request by d. Requests cancelled while
// waiting are dropped.
func LatencyMiddleware(d time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			if d <= 0 {
				next.ServeHTTP(res, req)
				return
			}

			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-req.Context().Done():
				return
			case <-timer.C:
			}

			next.ServeHTTP(res, req)
		})
	}
}

// RateLimitMiddleware allows requestsPerMinute requests per minute from each
// client IP. A limit below 1 allows everything.
func RateLimitMiddleware(requestsPerMinute int) func(next http.Handler) http.Handler {
	if requestsPerMinute < 1 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(requestsPerMinute, time.Minute)
}
