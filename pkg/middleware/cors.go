package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORS applies cfg to every response. Preflight requests are answered with
// 204 and never reach the wrapped handler. When cfg is disabled or lists no
// origins, requests pass through untouched.
func CORS(cfg *CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled || len(cfg.Origins) == 0 {
			return next
		}

		fixed := cfg.headers()
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" && slices.Contains(cfg.Origins, origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				for k, v := range fixed {
					h.Set(k, v)
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// headers are the allow-listed response headers that do not depend on the
// request.
func (c *CORSConfig) headers() map[string]string {
	h := map[string]string{
		"Access-Control-Allow-Methods": strings.Join(c.AllowedMethods, ", "),
		"Access-Control-Allow-Headers": strings.Join(c.AllowedHeaders, ", "),
	}
	if len(c.ExposedHeaders) > 0 {
		h["Access-Control-Expose-Headers"] = strings.Join(c.ExposedHeaders, ", ")
	}
	if c.AllowCredentials {
		h["Access-Control-Allow-Credentials"] = "true"
	}
	if c.MaxAge > 0 {
		h["Access-Control-Max-Age"] = strconv.Itoa(c.MaxAge)
	}
	return h
}
