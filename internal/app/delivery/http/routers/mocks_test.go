package routers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/delivery/http/controllers"
	"aesthetics-service/internal/app/delivery/http/middlewares"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/app/services/shared/memstore"
	"aesthetics-service/internal/app/services/shared/ratelimiter"
	"aesthetics-service/internal/pkg/dto/requests"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSessionID = "3f1c9a52-8a51-4f0e-9d6e-2b7c4c1f0a11"
	testJWTSecret = "test-secret"
)

type MockFlowUsecase struct {
	mock.Mock
}

func (m *MockFlowUsecase) DemoPatients(ctx context.Context) []models.DemoPatient {
	args := m.Called(ctx)
	return args.Get(0).([]models.DemoPatient)
}

func (m *MockFlowUsecase) Advance(ctx context.Context, sessionID, step string, payload *requests.AdvanceStep) (string, error) {
	args := m.Called(ctx, sessionID, step, payload)
	return args.String(0), args.Error(1)
}

func (m *MockFlowUsecase) CheckPrerequisites(ctx context.Context, sessionID, step string, query map[string]string) models.StepDecision {
	args := m.Called(ctx, sessionID, step, query)
	return args.Get(0).(models.StepDecision)
}

func (m *MockFlowUsecase) Reset(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockFlowUsecase) Results(ctx context.Context, sessionID string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

func (m *MockFlowUsecase) Detail(ctx context.Context, sessionID, category string) (*models.AreaDetail, error) {
	args := m.Called(ctx, sessionID, category)
	detail, _ := args.Get(0).(*models.AreaDetail)
	return detail, args.Error(1)
}

func (m *MockFlowUsecase) Journey(ctx context.Context, sessionID string) ([]models.JourneyPhase, error) {
	args := m.Called(ctx, sessionID)
	phases, _ := args.Get(0).([]models.JourneyPhase)
	return phases, args.Error(1)
}

func (m *MockFlowUsecase) SetPreferences(ctx context.Context, sessionID string, request *requests.Preferences) (*models.Preferences, error) {
	args := m.Called(ctx, sessionID, request)
	preferences, _ := args.Get(0).(*models.Preferences)
	return preferences, args.Error(1)
}

type MockProviderUsecase struct {
	mock.Mock
}

func (m *MockProviderUsecase) Login(ctx context.Context, sessionID, code string) (string, *models.Provider, error) {
	args := m.Called(ctx, sessionID, code)
	provider, _ := args.Get(1).(*models.Provider)
	return args.String(0), provider, args.Error(2)
}

func (m *MockProviderUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockProviderUsecase) CurrentProvider(ctx context.Context, sessionID string) (*models.Provider, error) {
	args := m.Called(ctx, sessionID)
	provider, _ := args.Get(0).(*models.Provider)
	return provider, args.Error(1)
}

func (m *MockProviderUsecase) ResolveProvider(ctx context.Context, code string) (*models.Provider, error) {
	args := m.Called(ctx, code)
	provider, _ := args.Get(0).(*models.Provider)
	return provider, args.Error(1)
}

func (m *MockProviderUsecase) ListPatients(ctx context.Context, providerID string) ([]models.PatientRecord, error) {
	args := m.Called(ctx, providerID)
	patients, _ := args.Get(0).([]models.PatientRecord)
	return patients, args.Error(1)
}

func (m *MockProviderUsecase) GetPatient(ctx context.Context, providerID, patientID string) (*models.PatientRecord, error) {
	args := m.Called(ctx, providerID, patientID)
	patient, _ := args.Get(0).(*models.PatientRecord)
	return patient, args.Error(1)
}

type MockScanUsecase struct {
	mock.Mock
}

func (m *MockScanUsecase) UploadScan(ctx context.Context, providerID, patientID string, front, side *contracts.ScanPhoto) (*models.AnalysisResult, error) {
	args := m.Called(ctx, providerID, patientID, front, side)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Env:                        "test",
			Version:                    "v1",
			EndpointPrefix:             "/api",
			AllowedOrigins:             []string{"http://localhost:3000"},
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 4,
			RequestTimeoutInSeconds:    5,
		},
		JWT: config.AppJWT{
			Secret:        testJWTSecret,
			ExpTimeInHour: 1,
		},
		Minio: config.AppMinio{
			ScanMaxUploadSizeInMB: 1,
		},
	}
}

func newTestRouter(flowUsecase contracts.FlowUsecase, providerUsecase contracts.ProviderUsecase, scanUsecase contracts.ScanUsecase) *chi.Mux {
	return newTestRouterWithConfig(newTestConfig(), flowUsecase, providerUsecase, scanUsecase)
}

func newTestRouterWithConfig(internalConfig *config.InternalConfig, flowUsecase contracts.FlowUsecase, providerUsecase contracts.ProviderUsecase, scanUsecase contracts.ScanUsecase) *chi.Mux {
	logger := zap.NewNop()
	scanLimiter := ratelimiter.NewResourceLimiter(memstore.NewMemoryCounterStore(), logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, providerUsecase, scanLimiter, internalConfig),
		controllers.NewFlowController(logger, flowUsecase, internalConfig),
		controllers.NewProviderController(logger, providerUsecase, scanUsecase, internalConfig),
		controllers.NewHealthController(internalConfig),
	)
	return router
}

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var response testResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}
