package constvars

// Directory (Airtable) column names.
const (
	DirectoryFieldProviderName      = "Name"
	DirectoryFieldProviderCode      = "Code"
	DirectoryFieldProviderEmail     = "Email"
	DirectoryFieldProviderPhone     = "Phone"
	DirectoryFieldProviderSpecialty = "Specialty"

	DirectoryFieldPatientID        = "Patient ID"
	DirectoryFieldPatientName      = "Name"
	DirectoryFieldPatientAge       = "Age"
	DirectoryFieldPatientEmail     = "Email"
	DirectoryFieldPatientPhone     = "Phone"
	DirectoryFieldPatientLastVisit = "Last Visit"
	DirectoryFieldPatientScanDate  = "Scan Date"
	DirectoryFieldPatientScore     = "Score"
	DirectoryFieldPatientFindings  = "Findings"
	DirectoryFieldPatientConcerns  = "Areas of Concern"
	DirectoryFieldPatientFront     = "Front Image"
	DirectoryFieldPatientSide      = "Side Image"

	// Linked lookup of the provider's code on the patient row.
	DirectoryFieldPatientProviderCode = "Provider Code"
	// Plain text provider name on the patient row.
	DirectoryFieldPatientProviderName = "Provider"
)

// Projection defaults for patient fields missing upstream.
const (
	DefaultPatientName       = "Anonymous Patient"
	DefaultPatientAge        = 35
	MinPatientAge            = 0
	MaxPatientAge            = 120
	DefaultPatientScore      = 70
	DefaultPatientFrontImage = "/images/placeholder-front.jpg"
	DefaultPatientSideImage  = "/images/placeholder-side.jpg"
)

const (
	ResourceProvider = "provider"
	ResourcePatient  = "patient"
)

const (
	FilterStrategyProviderCode = "linked-provider-code"
	FilterStrategyProviderName = "provider-name"
)

const (
	AirtableDefaultBaseURL       = "https://api.airtable.com/v0"
	AirtableQueryFilterFormula   = "filterByFormula"
	AirtableQueryOffset          = "offset"
	AirtableRequestsPerSecond    = 5
	AirtableDefaultProviderTable = "Providers"
	AirtableDefaultPatientTable  = "Patients"
)

const (
	EventScanAnalyzed = "scan.analyzed"
)
