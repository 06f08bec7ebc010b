package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

// IdempotencyStore is satisfied by *redis.Client.
type IdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Idempotency drops repeated submissions carrying the same X-Idempotency-Key
// within ttl. Requests without the header pass through. Redis failures do not
// block the request. A key is released again when the request it guarded was
// rejected (status >= 400), so a corrected retry is not dropped.
func Idempotency(store IdempotencyStore, metricsManager *metrics.Manager, ttl time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idemKey := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
			if idemKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			redisKey := "fitlog:idempotency:" + idemKey
			firstSeen, err := store.SetNX(r.Context(), redisKey, "1", ttl).Result()
			if err != nil {
				log.Errorf("idempotency check [%s]: %s", redisKey, err)
				next.ServeHTTP(w, r)
				return
			}

			if !firstSeen {
				log.Debugf("duplicate request dropped, idempotency key [%s]", idemKey)
				if metricsManager != nil {
					metricsManager.CounterDuplicateRequests.Inc()
				}
				http.Error(w, "duplicate request", http.StatusConflict)
				return
			}

			resp := newResponseWriter(w)
			defer func() {
				if p := recover(); p != nil {
					releaseIdempotencyKey(r.Context(), store, redisKey)
					panic(p)
				}
				if resp.statusCode >= http.StatusBadRequest {
					releaseIdempotencyKey(r.Context(), store, redisKey)
				}
			}()
			next.ServeHTTP(resp, r)
		})
	}
}

func releaseIdempotencyKey(ctx context.Context, store IdempotencyStore, redisKey string) {
	// the client may be gone already, the key still has to go
	if err := store.Del(context.WithoutCancel(ctx), redisKey).Err(); err != nil {
		log.Errorf("release idempotency key [%s]: %s", redisKey, err)
		return
	}
	log.Tracef("idempotency key [%s] released", redisKey)
}
