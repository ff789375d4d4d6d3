package scans

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"path"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ScanAnalyzedPayload is published with every successful scan.
type ScanAnalyzedPayload struct {
	ProviderID    string `json:"provider_id"`
	PatientID     string `json:"patient_id"`
	Score         int    `json:"score"`
	FindingsCount int    `json:"findings_count"`
	FrontImageURL string `json:"front_image_url"`
	SideImageURL  string `json:"side_image_url"`
	AnalyzedAt    string `json:"analyzed_at"`
}

type scanUsecase struct {
	Storage         contracts.Storage
	InferenceClient contracts.InferenceClient
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewScanUsecase(
	storage contracts.Storage,
	inferenceClient contracts.InferenceClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScanUsecase {
	return &scanUsecase{
		Storage:         storage,
		InferenceClient: inferenceClient,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *scanUsecase) UploadScan(ctx context.Context, providerID, patientID string, front, side *contracts.ScanPhoto) (*models.AnalysisResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scanUsecase.UploadScan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if front == nil || front.Reader == nil {
		return nil, exceptions.ErrMissingRequiredField(constvars.FormFieldFrontPhoto)
	}
	if side == nil || side.Reader == nil {
		return nil, exceptions.ErrMissingRequiredField(constvars.FormFieldSidePhoto)
	}

	prefix := path.Join(uc.InternalConfig.Minio.ScanObjectPrefix, providerID, patientID)

	var frontURL, sideURL string
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		url, err := uc.upload(groupCtx, prefix, constvars.FormFieldFrontPhoto, front)
		frontURL = url
		return err
	})
	group.Go(func() error {
		url, err := uc.upload(groupCtx, prefix, constvars.FormFieldSidePhoto, side)
		sideURL = url
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("scanUsecase.UploadScan error uploading photos",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.InferenceClient.Analyze(ctx, frontURL, sideURL)
	if err != nil {
		uc.Log.Error("scanUsecase.UploadScan error analyzing photos",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	payload := &ScanAnalyzedPayload{
		ProviderID:    providerID,
		PatientID:     patientID,
		Score:         result.Score,
		FindingsCount: len(result.Findings),
		FrontImageURL: frontURL,
		SideImageURL:  sideURL,
		AnalyzedAt:    result.AnalyzedAt,
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.EventScanAnalyzed, payload); err != nil {
		uc.Log.Warn("scanUsecase.UploadScan scan analyzed but event was not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("scanUsecase.UploadScan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingCountKey, len(result.Findings)),
	)
	return result, nil
}

func (uc *scanUsecase) upload(ctx context.Context, prefix, label string, photo *contracts.ScanPhoto) (string, error) {
	extension, ok := utils.ImageExtension(photo.ContentType)
	if !ok {
		return "", exceptions.ErrImageValidation(nil)
	}
	objectName := utils.GenerateObjectName(prefix, label, extension)
	return uc.Storage.UploadFile(ctx, photo.Reader, photo.Size, photo.ContentType, objectName)
}
