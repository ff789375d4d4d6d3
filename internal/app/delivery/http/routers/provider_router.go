package routers

import (
	"aesthetics-service/internal/app/delivery/http/controllers"
	"aesthetics-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *controllers.ProviderController) {
	router.Post("/login", providerController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Post("/logout", providerController.Logout)
		r.Get("/me", providerController.Me)
		r.Get("/patients", providerController.ListPatients)
		r.Get("/patients/{patient_id}", providerController.GetPatient)
		r.With(middlewares.ScanQuota).Post("/patients/{patient_id}/scans", providerController.UploadScan)
	})
}
