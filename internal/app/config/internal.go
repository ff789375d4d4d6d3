package config

type InternalConfig struct {
	App       App
	JWT       AppJWT
	Session   AppSession
	Airtable  AppAirtable
	Inference AppInference
	Minio     AppMinio
	RabbitMQ  AppRabbitMQ
	Scan      AppScan
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
	// DemoMode serves provider and patient records from the bundled static
	// directory instead of Airtable.
	DemoMode bool
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpiredTimeInMinutes int
}

type AppAirtable struct {
	APIKey               string
	BaseID               string
	BaseURL              string
	ProviderTable        string
	PatientTable         string
	RequestsPerSecond    int
	HTTPTimeoutInSeconds int
}

type AppInference struct {
	Endpoint             string
	Token                string
	HTTPTimeoutInSeconds int
}

type AppMinio struct {
	BucketName            string
	PublicBaseUrl         string
	ScanObjectPrefix      string
	ScanMaxUploadSizeInMB int64
}

type AppRabbitMQ struct {
	ScanEventQueue string
}

type AppScan struct {
	QuotaPerWindow       int
	QuotaWindowInSeconds int
}
