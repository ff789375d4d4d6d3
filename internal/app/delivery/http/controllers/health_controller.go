package controllers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]interface{}{
		"version":  ctrl.InternalConfig.App.Version,
		"demoMode": ctrl.InternalConfig.App.DemoMode,
	})
}
