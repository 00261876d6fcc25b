package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

// RateLimiter applies a fixed-window request limit per client IP. Expired
// windows are swept whenever the map has grown past a threshold, so idle
// clients do not accumulate forever.
func RateLimiter(limit int, span time.Duration) echo.MiddlewareFunc {
	const sweepThreshold = 1024

	var (
		mu      sync.Mutex
		windows = make(map[string]*window)
	)

	sweep := func(now time.Time) {
		if len(windows) < sweepThreshold {
			return
		}
		for key, w := range windows {
			if now.Sub(w.start) > span {
				delete(windows, key)
			}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			sweep(now)

			w, ok := windows[key]
			if !ok || now.Sub(w.start) > span {
				w = &window{start: now}
				windows[key] = w
			}

			if w.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			mu.Unlock()

			return next(c)
		}
	}
}
