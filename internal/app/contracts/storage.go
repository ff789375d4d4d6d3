package contracts

import (
	"context"
	"io"
)

type Storage interface {
	// UploadFile stores the blob under objectName and returns its public URL.
	UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (string, error)
}
