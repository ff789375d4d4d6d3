package responses

import "aesthetics-service/internal/app/models"

type AdvanceStep struct {
	Step     string `json:"step"`
	NextStep string `json:"nextStep"`
}

// StepView is what the client needs to render a step, or where to go instead.
type StepView struct {
	models.StepDecision
	Analysis *models.AnalysisResult `json:"analysis,omitempty"`
	Detail   *models.AreaDetail     `json:"detail,omitempty"`
	Journey  []models.JourneyPhase  `json:"journey,omitempty"`
}

type SessionReset struct {
	SessionID string `json:"sessionId"`
	NextStep  string `json:"nextStep"`
}
