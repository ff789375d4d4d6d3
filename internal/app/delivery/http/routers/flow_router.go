package routers

import (
	"aesthetics-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFlowRoutes(router chi.Router, flowController *controllers.FlowController) {
	router.Get("/patients", flowController.GetDemoPatients)
	router.Get("/steps/{step}", flowController.GetStep)
	router.Post("/steps/{step}", flowController.AdvanceStep)
	router.Delete("/session", flowController.ResetSession)
	router.Put("/preferences", flowController.SetPreferences)
}
