package models

// AnalysisResult is the structured output of a facial analysis, either the
// demo analysis of a session or the inference service result of a scan.
type AnalysisResult struct {
	PatientType string    `json:"patientType,omitempty"`
	Score       int       `json:"score"`
	Findings    []Finding `json:"findings"`
	FrontImage  string    `json:"frontImage,omitempty"`
	SideImage   string    `json:"sideImage,omitempty"`
	AnalyzedAt  string    `json:"analyzedAt"`
}

// AreaDetail groups the findings of one area tag.
type AreaDetail struct {
	Area     string    `json:"area"`
	Score    int       `json:"score"`
	Findings []Finding `json:"findings"`
}
