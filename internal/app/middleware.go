package app

import (
	"net/http"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/config"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-Session-Id header into context for downstream services.
	// Requests without a known session get a fresh one, echoed back in the
	// response header so the client can keep using it.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sessionId := req.Header.Get("X-Session-Id")
			if sessionId == "" || !deps.SessionStore.Exists(sessionId) {
				sessionId = deps.SessionStore.NewSessionId()
				log.Debugf("issued new session %s", sessionId)
			}
			w.Header().Set("X-Session-Id", sessionId)
			ctx := session.WithId(req.Context(), sessionId)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
