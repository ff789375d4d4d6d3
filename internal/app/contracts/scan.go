package contracts

import (
	"aesthetics-service/internal/app/models"
	"context"
	"io"
)

type InferenceClient interface {
	Analyze(ctx context.Context, frontImageURL, sideImageURL string) (*models.AnalysisResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// ScanPhoto is one uploaded photo of a scan.
type ScanPhoto struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

type ScanUsecase interface {
	UploadScan(ctx context.Context, providerID, patientID string, front, side *ScanPhoto) (*models.AnalysisResult, error)
}
