package middlewares

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
	ScanLimiter     *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, providerUsecase contracts.ProviderUsecase, scanLimiter *ratelimiter.ResourceLimiter, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		ProviderUsecase: providerUsecase,
		ScanLimiter:     scanLimiter,
		InternalConfig:  internalConfig,
	}
}
