package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inkwell-backend/pkg/cache"
)

// IndexCacheKey is the single global entry for the index feed; the index
// page has no per-user variation.
const IndexCacheKey = "feed:index"

// cachedResponse is the stored form of a rendered page.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder duplicates everything written to the response.
type bodyRecorder struct {
	gin.ResponseWriter
	body []byte
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body = append(r.body, b...)
	return r.ResponseWriter.Write(b)
}

// CachePage serves GET responses from the cache within the TTL window.
// Within the window repeated requests get the identical stored body even if
// content changed underneath; only an explicit Delete of the key
// invalidates early. Cache failures fall through to the handler.
func CachePage(store cache.Cache, key string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		var cached cachedResponse
		found, err := store.Get(c.Request.Context(), key, &cached)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("page cache read failed")
		}
		if found {
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		entry := cachedResponse{
			Status:      recorder.Status(),
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body,
		}
		if err := store.Set(c.Request.Context(), key, entry, ttl); err != nil {
			log.Error().Err(err).Str("key", key).Msg("page cache write failed")
		}
	}
}
