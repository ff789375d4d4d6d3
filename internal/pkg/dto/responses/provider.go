package responses

import "aesthetics-service/internal/app/models"

type ProviderLogin struct {
	Token     string           `json:"token"`
	SessionID string           `json:"sessionId"`
	Provider  *models.Provider `json:"provider"`
}

type PatientList struct {
	Total    int                    `json:"total"`
	Patients []models.PatientRecord `json:"patients"`
}

type ScanResult struct {
	PatientID string                 `json:"patientId"`
	Analysis  *models.AnalysisResult `json:"analysis"`
}
