package constvars

// Flow steps, in journey order.
const (
	StepPatientSelection = "patient-selection"
	StepQuestionnaire    = "questionnaire"
	StepAnalysis         = "analysis"
	StepAnalysisResults  = "analysis-results"
	StepAnalysisDetail   = "analysis-detail"
	StepJourney          = "journey"
	StepValue            = "value"
)

// Session record slots.
const (
	SlotSelectedPatient = "selectedPatient"
	SlotUserPhoto       = "userPhoto"
	SlotUserAnswers     = "userAnswers"
	SlotAnalysisResult  = "analysisResult"
	SlotFrontPhoto      = "frontPhoto"
	SlotSidePhoto       = "sidePhoto"
	SlotProvider        = "provider"
	SlotTheme           = "theme"
	SlotHIPAAMode       = "hipaaMode"
)

// Pseudo field that only lives in the request query, never in the session.
const FieldCategory = "category"

// Questionnaire keys that must be answered before the questionnaire step completes.
const (
	AnswerKeyConcerns           = "concerns"
	AnswerKeyAgeRange           = "ageRange"
	AnswerKeyPreviousTreatments = "previousTreatments"
	AnswerKeyGoal               = "goal"
)

const (
	SessionKeyPrefix = "session:"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
