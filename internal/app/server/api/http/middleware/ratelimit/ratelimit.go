package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

const (
	idleTTL      = 10 * time.Minute
	sweepTrigger = 1024
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter throttles requests per client address.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	log      *slog.Logger
}

// New allows perMinute requests a minute per address with the given burst.
func New(perMinute, burst int, log *slog.Logger) *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
		log:      log.With(slog.String("component", "rate_limiter")),
	}
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		key := clientKey(ctx.RemoteAddr())

		if ok, delay := l.allow(key); !ok {
			l.log.Warn("rate limit exceeded", slog.String("client", key), slog.String("path", ctx.URL().Path))
			tooMany(ctx, delay)
			return
		}

		next(ctx)
	}
}

// allow takes a token for key, or reports how long until one is free.
func (l *Limiter) allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.visitors) >= sweepTrigger {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > idleTTL {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, idleTTL
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func tooMany(ctx huma.Context, delay time.Duration) {
	secs := int(delay.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}

	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetHeader("Retry-After", strconv.Itoa(secs))
	ctx.SetStatus(http.StatusTooManyRequests)
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Too many attempts, try again later",
	})
}

func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
