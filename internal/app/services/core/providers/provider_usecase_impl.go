package providers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type providerUsecase struct {
	DirectoryClient contracts.DirectoryClient
	SessionStore    contracts.SessionStore
	InternalConfig  *config.InternalConfig
	Strategies      []FilterStrategy
	Log             *zap.Logger
}

func NewProviderUsecase(
	directoryClient contracts.DirectoryClient,
	sessionStore contracts.SessionStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		DirectoryClient: directoryClient,
		SessionStore:    sessionStore,
		InternalConfig:  internalConfig,
		Strategies:      DefaultPatientFilterStrategies,
		Log:             logger,
	}
}

func (uc *providerUsecase) Login(ctx context.Context, sessionID, code string) (string, *models.Provider, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	provider, err := uc.ResolveProvider(ctx, code)
	if err != nil {
		return "", nil, err
	}

	encoded, err := json.Marshal(provider)
	if err != nil {
		return "", nil, exceptions.ErrCannotMarshalJSON(err)
	}
	err = uc.SessionStore.Set(ctx, sessionID, map[string]string{constvars.SlotProvider: string(encoded)})
	if err != nil {
		uc.Log.Error("providerUsecase.Login error storing provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, provider.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("providerUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("providerUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, provider.ID),
	)
	return token, provider, nil
}

func (uc *providerUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return uc.SessionStore.Delete(ctx, sessionID, constvars.SlotProvider)
}

func (uc *providerUsecase) CurrentProvider(ctx context.Context, sessionID string) (*models.Provider, error) {
	raw, found, err := uc.SessionStore.Get(ctx, sessionID, constvars.SlotProvider)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	var provider models.Provider
	if err := json.Unmarshal([]byte(raw), &provider); err != nil || provider.ID == "" {
		uc.Log.Warn("providerUsecase.CurrentProvider corrupt provider slot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		if deleteErr := uc.SessionStore.Delete(ctx, sessionID, constvars.SlotProvider); deleteErr != nil {
			uc.Log.Error("providerUsecase.CurrentProvider error clearing provider slot",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(deleteErr),
			)
		}
		return nil, exceptions.ErrInvalidSession(err)
	}
	return &provider, nil
}

func (uc *providerUsecase) ResolveProvider(ctx context.Context, code string) (*models.Provider, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.ResolveProvider called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, exceptions.ErrInvalidAccessCode(nil, fmt.Sprintf(constvars.ErrDevMissingRequiredField, constvars.DirectoryFieldProviderCode))
	}

	table := uc.InternalConfig.Airtable.ProviderTable
	records, err := uc.DirectoryClient.ListRecords(ctx, table, &models.Filter{
		Field: constvars.DirectoryFieldProviderCode,
		Value: code,
		Mode:  models.FilterEquals,
	})
	if err != nil {
		return nil, uc.translateDirectoryError(ctx, err, table)
	}

	switch len(records) {
	case 0:
		uc.Log.Info("providerUsecase.ResolveProvider no provider matches code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidAccessCode(nil, fmt.Sprintf(constvars.ErrDevDirectoryNoMatch, constvars.ResourceProvider))
	case 1:
		provider := projectProvider(records[0])
		uc.Log.Info("providerUsecase.ResolveProvider succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderIDKey, provider.ID),
		)
		return provider, nil
	default:
		uc.Log.Error("providerUsecase.ResolveProvider access code is not unique in the directory",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTableKey, table),
			zap.Int(constvars.LoggingCountKey, len(records)),
		)
		return nil, exceptions.ErrInvalidAccessCode(nil, fmt.Sprintf(constvars.ErrDevDirectoryAmbiguousMatch, constvars.ResourceProvider))
	}
}

func (uc *providerUsecase) ListPatients(ctx context.Context, providerID string) ([]models.PatientRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	providerTable := uc.InternalConfig.Airtable.ProviderTable
	record, err := uc.DirectoryClient.GetRecord(ctx, providerTable, providerID)
	if err != nil {
		return nil, uc.translateDirectoryError(ctx, err, providerTable)
	}
	provider := projectProvider(*record)

	patientTable := uc.InternalConfig.Airtable.PatientTable
	for _, strategy := range uc.Strategies {
		filter := strategy.Build(provider)
		if filter == nil {
			uc.Log.Debug("providerUsecase.ListPatients strategy skipped",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStrategyKey, strategy.Name),
			)
			continue
		}

		records, err := uc.DirectoryClient.ListRecords(ctx, patientTable, filter)
		if err != nil {
			return nil, uc.translateDirectoryError(ctx, err, patientTable)
		}
		if len(records) == 0 {
			uc.Log.Info("providerUsecase.ListPatients strategy returned no rows",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStrategyKey, strategy.Name),
			)
			continue
		}

		patients := uc.projectPatients(ctx, records)
		uc.Log.Info("providerUsecase.ListPatients succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStrategyKey, strategy.Name),
			zap.Int(constvars.LoggingCountKey, len(patients)),
		)
		return patients, nil
	}

	return []models.PatientRecord{}, nil
}

func (uc *providerUsecase) GetPatient(ctx context.Context, providerID, patientID string) (*models.PatientRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patients, err := uc.ListPatients(ctx, providerID)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == patientID {
			return &patients[i], nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(nil, fmt.Sprintf(constvars.ErrDevPatientNotInProviderSet, patientID, providerID))
}

func (uc *providerUsecase) projectPatients(ctx context.Context, records []models.RawRecord) []models.PatientRecord {
	patients := make([]models.PatientRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		patient, ok := projectPatient(record)
		if !ok {
			uc.Log.Warn("providerUsecase.projectPatients dropping record without identifier",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String("created_time", record.CreatedTime),
			)
			continue
		}
		if _, duplicate := seen[patient.ID]; duplicate {
			uc.Log.Warn("providerUsecase.projectPatients dropping record with duplicate identifier",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingPatientIDKey, patient.ID),
			)
			continue
		}
		seen[patient.ID] = struct{}{}
		patients = append(patients, *patient)
	}
	return patients
}

// translateDirectoryError keeps the error taxonomy closed: anything the
// directory client did not already classify becomes UpstreamUnavailable.
func (uc *providerUsecase) translateDirectoryError(ctx context.Context, err error, table string) error {
	var upstreamErr *exceptions.UpstreamError
	if errors.As(err, &upstreamErr) {
		uc.Log.Error("providerUsecase directory responded with an error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingTableKey, table),
			zap.Int(constvars.LoggingUpstreamStatus, upstreamErr.StatusCode),
			zap.String(constvars.LoggingUpstreamBody, upstreamErr.Body),
		)
	}

	switch {
	case errors.Is(err, exceptions.ErrUpstreamUnavailable),
		errors.Is(err, exceptions.ErrServiceMisconfigured),
		errors.Is(err, exceptions.ErrNotFound),
		errors.Is(err, exceptions.ErrInvalidCredential):
		return err
	}
	return exceptions.ErrUpstream(err, fmt.Sprintf(constvars.ErrDevDirectoryUnavailable, table))
}
