package storage

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"io"
)

type unavailableStorage struct{}

// NewUnavailableStorage stands in when object storage could not be reached at
// boot. Every upload reports the service as misconfigured.
func NewUnavailableStorage() contracts.Storage {
	return unavailableStorage{}
}

func (unavailableStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (string, error) {
	return "", exceptions.ErrMisconfigured(constvars.ErrDevStorageUnavailable)
}
