package storage

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PublicBaseUrl string
	Log           *zap.Logger
}

// NewMinioStorage stores scan photos in one bucket. Objects are served from
// publicBaseUrl, which points at the MinIO endpoint or at the GCS/S3 bucket
// host in front of it.
func NewMinioStorage(minioClient *minio.Client, bucketName, publicBaseUrl string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    bucketName,
		PublicBaseUrl: publicBaseUrl,
		Log:           logger,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return PublicObjectURL(m.PublicBaseUrl, m.BucketName, objectName), nil
}

// PublicObjectURL joins the public base, bucket and object name, escaping
// each object path segment.
func PublicObjectURL(publicBaseUrl, bucketName, objectName string) string {
	segments := strings.Split(strings.TrimLeft(objectName, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.TrimRight(publicBaseUrl, "/") + "/" + url.PathEscape(bucketName) + "/" + strings.Join(segments, "/")
}
