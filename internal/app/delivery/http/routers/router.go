package routers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/delivery/http/controllers"
	"aesthetics-service/internal/app/delivery/http/middlewares"
	"aesthetics-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	flowController *controllers.FlowController,
	providerController *controllers.ProviderController,
	healthController *controllers.HealthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXSessionID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderXSessionID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", healthController.Liveness)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.Session)

			r.Route("/flow", func(r chi.Router) {
				attachFlowRoutes(r, flowController)
			})

			r.Route("/providers", func(r chi.Router) {
				attachProviderRoutes(r, middlewares, providerController)
			})
		})
	})
}
