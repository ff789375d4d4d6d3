package middlewares

import (
	"aesthetics-service/internal/app/services/shared/ratelimiter"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const scanLimiterGroup = "scan-upload"

// ScanQuota caps scan uploads per provider in a fixed window. It runs after
// Authenticate. A failing counter store lets the request through.
func (m *Middlewares) ScanQuota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider, ok := utils.GetProvider(r.Context())
		if !ok || m.ScanLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		requestID := utils.GetRequestID(r.Context())
		result, err := m.ScanLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      provider.ID,
			LimiterGroupName:  scanLimiterGroup,
			WindowDurationSec: m.InternalConfig.Scan.QuotaWindowInSeconds,
			MaxQuota:          m.InternalConfig.Scan.QuotaPerWindow,
		})
		if err != nil {
			m.Log.Warn("Middlewares.ScanQuota limiter unavailable, allowing request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProviderIDKey, provider.ID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !result.Allowed {
			m.Log.Info("Middlewares.ScanQuota quota exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingProviderIDKey, provider.ID),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrQuotaExceeded(provider.ID))
			return
		}

		next.ServeHTTP(w, r)
	})
}
