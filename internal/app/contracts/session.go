package contracts

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/dto/requests"
	"context"
)

// SessionStore is the key-value port behind the session record. A session is
// a set of named string slots; writes of several slots land together or not
// at all.
type SessionStore interface {
	Get(ctx context.Context, sessionID, slot string) (value string, found bool, err error)
	Set(ctx context.Context, sessionID string, slots map[string]string) error
	Delete(ctx context.Context, sessionID string, slots ...string) error
	Clear(ctx context.Context, sessionID string) error
}

type FlowUsecase interface {
	DemoPatients(ctx context.Context) []models.DemoPatient
	Advance(ctx context.Context, sessionID, step string, payload *requests.AdvanceStep) (nextStep string, err error)
	CheckPrerequisites(ctx context.Context, sessionID, step string, query map[string]string) models.StepDecision
	Reset(ctx context.Context, sessionID string) error
	Results(ctx context.Context, sessionID string) (*models.AnalysisResult, error)
	Detail(ctx context.Context, sessionID, category string) (*models.AreaDetail, error)
	Journey(ctx context.Context, sessionID string) ([]models.JourneyPhase, error)
	SetPreferences(ctx context.Context, sessionID string, request *requests.Preferences) (*models.Preferences, error)
}
