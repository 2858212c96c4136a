package cache

import (
	"bytes"
	"log"
	"net/http"
)

// Middleware serves whole responses from the page cache. Only successful
// GET responses are stored; everything else passes through untouched.
// Cache failures degrade to a normal uncached request.
func Middleware(pages PageCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := Key(r.URL.Path, r.URL.RawQuery)

			if page, found, err := pages.Get(r.Context(), key); err == nil && found {
				if page.ContentType != "" {
					w.Header().Set("Content-Type", page.ContentType)
				}
				w.WriteHeader(page.Status)
				w.Write(page.Body)
				return
			}

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK {
				return
			}

			err := pages.Set(r.Context(), key, &CachedPage{
				Status:      rec.status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			})
			if err != nil {
				log.Printf("[PageCache] store miss failed: key=%s err=%v", key, err)
			}
		})
	}
}

// responseRecorder tees the response body so a copy can be cached after
// it has been written to the client.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
