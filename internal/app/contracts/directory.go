package contracts

import (
	"aesthetics-service/internal/app/models"
	"context"
)

// DirectoryClient reads rows from the external provider/patient directory.
type DirectoryClient interface {
	ListRecords(ctx context.Context, table string, filter *models.Filter) ([]models.RawRecord, error)
	GetRecord(ctx context.Context, table, recordID string) (*models.RawRecord, error)
}

type ProviderUsecase interface {
	Login(ctx context.Context, sessionID, code string) (token string, provider *models.Provider, err error)
	Logout(ctx context.Context, sessionID string) error
	CurrentProvider(ctx context.Context, sessionID string) (*models.Provider, error)
	ResolveProvider(ctx context.Context, code string) (*models.Provider, error)
	ListPatients(ctx context.Context, providerID string) ([]models.PatientRecord, error)
	GetPatient(ctx context.Context, providerID, patientID string) (*models.PatientRecord, error)
}
