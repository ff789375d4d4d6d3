package scans

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (string, error) {
	args := m.Called(ctx, file, size, contentType, objectName)
	return args.String(0), args.Error(1)
}

type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) Analyze(ctx context.Context, frontImageURL, sideImageURL string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, frontImageURL, sideImageURL)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

func photo(content string) *contracts.ScanPhoto {
	return &contracts.ScanPhoto{Reader: strings.NewReader(content), Size: int64(len(content)), ContentType: constvars.MIMEImageJPEG}
}

func objectUnder(label string) interface{} {
	return mock.MatchedBy(func(objectName string) bool {
		return strings.HasPrefix(objectName, "scans/recProvider1/P-1/") && strings.HasSuffix(objectName, "-"+label+".jpg")
	})
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{Minio: config.AppMinio{ScanObjectPrefix: "scans"}}
}

func TestScanUsecase_UploadScan(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Analyzes And Publishes", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadFile", mock.Anything, mock.Anything, int64(5), constvars.MIMEImageJPEG, objectUnder("front")).Return("https://cdn.test/front.jpg", nil)
		storage.On("UploadFile", mock.Anything, mock.Anything, int64(4), constvars.MIMEImageJPEG, objectUnder("side")).Return("https://cdn.test/side.jpg", nil)

		inference := new(MockInferenceClient)
		inference.On("Analyze", mock.Anything, "https://cdn.test/front.jpg", "https://cdn.test/side.jpg").
			Return(&models.AnalysisResult{Score: 66, Findings: []models.Finding{{Name: "Jowls"}}}, nil)

		publisher := new(MockEventPublisher)
		publisher.On("Publish", mock.Anything, constvars.EventScanAnalyzed, mock.MatchedBy(func(payload *ScanAnalyzedPayload) bool {
			return payload.PatientID == "P-1" && payload.Score == 66 && payload.FindingsCount == 1
		})).Return(nil)

		uc := NewScanUsecase(storage, inference, publisher, testConfig(), zap.NewNop())
		result, err := uc.UploadScan(ctx, "recProvider1", "P-1", photo("front"), photo("side"))
		require.NoError(t, err)
		assert.Equal(t, 66, result.Score)

		storage.AssertExpectations(t)
		inference.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Upload Failure Stops Before Inference", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, objectUnder("front")).Return("https://cdn.test/front.jpg", nil)
		storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, objectUnder("side")).
			Return("", exceptions.ErrMinioCreateObject(errors.New("connection reset"), "scans"))
		inference := new(MockInferenceClient)
		publisher := new(MockEventPublisher)

		uc := NewScanUsecase(storage, inference, publisher, testConfig(), zap.NewNop())
		_, err := uc.UploadScan(ctx, "recProvider1", "P-1", photo("front"), photo("side"))
		assert.True(t, errors.Is(err, exceptions.ErrUpstreamUnavailable))
		inference.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Publish Failure Still Returns Result", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.test/x.jpg", nil)
		inference := new(MockInferenceClient)
		inference.On("Analyze", mock.Anything, mock.Anything, mock.Anything).Return(&models.AnalysisResult{Score: 50}, nil)
		publisher := new(MockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(exceptions.ErrRabbitMQPublishMessage(errors.New("closed"), "scan-events"))

		uc := NewScanUsecase(storage, inference, publisher, testConfig(), zap.NewNop())
		result, err := uc.UploadScan(ctx, "recProvider1", "P-1", photo("front"), photo("side"))
		require.NoError(t, err)
		assert.Equal(t, 50, result.Score)
	})

	t.Run("Missing Side Photo", func(t *testing.T) {
		uc := NewScanUsecase(new(MockStorage), new(MockInferenceClient), new(MockEventPublisher), testConfig(), zap.NewNop())
		_, err := uc.UploadScan(ctx, "recProvider1", "P-1", photo("front"), nil)
		assert.True(t, errors.Is(err, exceptions.ErrValidation))
	})
}
