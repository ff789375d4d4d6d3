package middlewares

import (
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate requires a provider token. The session named by the token
// replaces the header session for the rest of the request, and the provider
// stored in it is put into the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing)))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		provider, err := m.ProviderUsecase.CurrentProvider(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		m.Log.Debug("Middlewares.Authenticate provider resolved",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingProviderIDKey, provider.ID),
		)

		w.Header().Set(constvars.HeaderXSessionID, sessionID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_PROVIDER_KEY, provider)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
