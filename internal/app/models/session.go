package models

// StepDecision is the outcome of a prerequisite check: either the step can
// render, or the client must go to RedirectTo first.
type StepDecision struct {
	Step       string   `json:"step"`
	Render     bool     `json:"render"`
	RedirectTo string   `json:"redirectTo,omitempty"`
	Missing    []string `json:"missing,omitempty"`
}

// DemoPatient is one selectable patient type of the patient-facing demo.
type DemoPatient struct {
	Tag         string    `json:"tag"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Photo       string    `json:"photo"`
	Score       int       `json:"score"`
	Findings    []Finding `json:"findings"`
}

// JourneyPhase is one stage of the treatment journey proposed to the user.
type JourneyPhase struct {
	Order      int      `json:"order"`
	Title      string   `json:"title"`
	Areas      []string `json:"areas"`
	Treatments []string `json:"treatments"`
	Weeks      int      `json:"weeks"`
}

type Preferences struct {
	Theme     string `json:"theme"`
	HIPAAMode bool   `json:"hipaaMode"`
}
