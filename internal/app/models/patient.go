package models

// Finding is a named facial attribute with a severity tier and a 0-100 score.
type Finding struct {
	Name     string `json:"name"`
	Area     string `json:"area"`
	Severity string `json:"severity"`
	Score    int    `json:"score"`
}

// PatientRecord is the normalized patient view. ID is the only key used in
// routes; the name never is.
type PatientRecord struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	LastVisit        string    `json:"lastVisit,omitempty"`
	ScanDate         string    `json:"scanDate,omitempty"`
	Score            int       `json:"score"`
	Findings         []Finding `json:"findings"`
	Areas            []string  `json:"areas"`
	FrontImage       string    `json:"frontImage"`
	SideImage        string    `json:"sideImage"`
	AirtableRecordID string    `json:"airtableRecordId,omitempty"`
}
