package config

import (
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:             utils.GetEnvList("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			DemoMode:                   utils.GetEnvBool("APP_DEMO_MODE", false),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Session: AppSession{
			ExpiredTimeInMinutes: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_MINUTES", 120),
		},
		Airtable: AppAirtable{
			APIKey:               utils.GetEnvString("AIRTABLE_API_KEY", ""),
			BaseID:               utils.GetEnvString("AIRTABLE_BASE_ID", ""),
			BaseURL:              utils.GetEnvString("AIRTABLE_BASE_URL", constvars.AirtableDefaultBaseURL),
			ProviderTable:        utils.GetEnvString("AIRTABLE_PROVIDER_TABLE", constvars.AirtableDefaultProviderTable),
			PatientTable:         utils.GetEnvString("AIRTABLE_PATIENT_TABLE", constvars.AirtableDefaultPatientTable),
			RequestsPerSecond:    utils.GetEnvInt("AIRTABLE_REQUESTS_PER_SECOND", constvars.AirtableRequestsPerSecond),
			HTTPTimeoutInSeconds: utils.GetEnvInt("AIRTABLE_HTTP_TIMEOUT_IN_SECONDS", 15),
		},
		Inference: AppInference{
			Endpoint:             utils.GetEnvString("INFERENCE_ENDPOINT", ""),
			Token:                utils.GetEnvString("INFERENCE_TOKEN", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("INFERENCE_HTTP_TIMEOUT_IN_SECONDS", 60),
		},
		Minio: AppMinio{
			BucketName:            utils.GetEnvString("MINIO_BUCKET_NAME", "aesthetics-scans"),
			PublicBaseUrl:         utils.GetEnvString("MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
			ScanObjectPrefix:      utils.GetEnvString("MINIO_SCAN_OBJECT_PREFIX", "scans"),
			ScanMaxUploadSizeInMB: utils.GetEnvInt64("MINIO_SCAN_MAX_UPLOAD_SIZE_IN_MB", 10),
		},
		RabbitMQ: AppRabbitMQ{
			ScanEventQueue: utils.GetEnvString("RABBITMQ_SCAN_EVENT_QUEUE", "scan-events"),
		},
		Scan: AppScan{
			QuotaPerWindow:       utils.GetEnvInt("SCAN_QUOTA_PER_WINDOW", 20),
			QuotaWindowInSeconds: utils.GetEnvInt("SCAN_QUOTA_WINDOW_IN_SECONDS", 3600),
		},
	}
}
