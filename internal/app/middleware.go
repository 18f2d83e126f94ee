package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/naptar/naptar/internal/config"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Request logging
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			log.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start))
		})
	})
}
