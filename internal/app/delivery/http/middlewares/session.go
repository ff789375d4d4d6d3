package middlewares

import (
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session puts the caller's session ID into the request context. A missing or
// malformed X-Session-ID gets a fresh ID. Nothing is stored until a handler
// writes a slot.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(constvars.HeaderXSessionID)
		if _, err := uuid.Parse(sessionID); err != nil {
			if sessionID != "" {
				m.Log.Debug("Middlewares.Session discarding malformed session id",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				)
			}
			sessionID = utils.GenerateSessionID()
		}

		w.Header().Set(constvars.HeaderXSessionID, sessionID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
