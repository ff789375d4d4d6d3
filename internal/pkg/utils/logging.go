package utils

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"context"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok {
		return sessionID
	}
	return ""
}

func GetProvider(ctx context.Context) (*models.Provider, bool) {
	provider, ok := ctx.Value(constvars.CONTEXT_PROVIDER_KEY).(*models.Provider)
	return provider, ok && provider != nil
}
