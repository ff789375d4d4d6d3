package requests

// AdvanceStep carries the fields a step produces. Only the fields relevant
// to the step being completed are read.
type AdvanceStep struct {
	SelectedPatient string                 `json:"selectedPatient,omitempty"`
	UserPhoto       string                 `json:"userPhoto,omitempty"`
	UserAnswers     map[string]interface{} `json:"userAnswers,omitempty"`
	Category        string                 `json:"category,omitempty"`
}

type PatientSelection struct {
	SelectedPatient string `json:"selectedPatient" validate:"required"`
	UserPhoto       string `json:"userPhoto" validate:"required,image_uri"`
}

type CategorySelection struct {
	Category string `json:"category" validate:"required,area_tag"`
}

type Preferences struct {
	Theme     string `json:"theme" validate:"omitempty,oneof=light dark"`
	HIPAAMode *bool  `json:"hipaaMode"`
}
