package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Flow messages
	GetDemoPatientsSuccessMessage = "get demo patients successfully"
	CheckStepSuccessMessage       = "step checked successfully"
	AdvanceStepSuccessMessage     = "step completed successfully"
	ResetSessionSuccessMessage    = "session reset successfully"
	SetPreferencesSuccessMessage  = "preferences saved successfully"

	// Provider messages
	ProviderLoginSuccessMessage   = "successfully login"
	ProviderLogoutSuccessMessage  = "successfully logout"
	GetProviderSuccessMessage     = "get provider successfully"
	GetPatientsSuccessMessage     = "get patients successfully"
	GetPatientSuccessMessage      = "get patient successfully"
	UploadScanSuccessMessage      = "scan uploaded and analyzed successfully"
	HealthCheckSuccessMessage     = "service is healthy"
)
