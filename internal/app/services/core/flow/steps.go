package flow

import "aesthetics-service/internal/pkg/constvars"

// stepOrder is the journey order. Redirects always go to the earliest step
// that can produce a missing field.
var stepOrder = []string{
	constvars.StepPatientSelection,
	constvars.StepQuestionnaire,
	constvars.StepAnalysis,
	constvars.StepAnalysisResults,
	constvars.StepAnalysisDetail,
	constvars.StepJourney,
	constvars.StepValue,
}

// stepRequirements lists, per step, the fields that must be present before
// the step renders.
var stepRequirements = map[string][]string{
	constvars.StepPatientSelection: nil,
	constvars.StepQuestionnaire:    nil,
	constvars.StepAnalysis:         {constvars.SlotUserPhoto},
	constvars.StepAnalysisResults:  {constvars.SlotUserPhoto, constvars.SlotSelectedPatient},
	constvars.StepAnalysisDetail:   {constvars.SlotUserPhoto, constvars.FieldCategory},
	constvars.StepJourney:          {constvars.SlotUserAnswers},
	constvars.StepValue:            nil,
}

// fieldProducers maps a required field to the step that produces it.
var fieldProducers = map[string]string{
	constvars.SlotSelectedPatient: constvars.StepPatientSelection,
	constvars.SlotUserPhoto:       constvars.StepPatientSelection,
	constvars.SlotUserAnswers:     constvars.StepQuestionnaire,
	constvars.FieldCategory:       constvars.StepAnalysisResults,
}

var requiredAnswerKeys = []string{
	constvars.AnswerKeyConcerns,
	constvars.AnswerKeyAgeRange,
	constvars.AnswerKeyPreviousTreatments,
	constvars.AnswerKeyGoal,
}

// sessionSlots are the slots owned by the flow; Reset clears the whole
// session, these are the ones corrupt-data handling may clear one by one.
var sessionSlots = []string{
	constvars.SlotSelectedPatient,
	constvars.SlotUserPhoto,
	constvars.SlotUserAnswers,
	constvars.SlotAnalysisResult,
}

func stepIndex(step string) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

func isKnownStep(step string) bool {
	return stepIndex(step) >= 0
}

// nextStep returns the step after step. The terminal step wraps around to
// the first one.
func nextStep(step string) string {
	i := stepIndex(step)
	if i < 0 || i == len(stepOrder)-1 {
		return stepOrder[0]
	}
	return stepOrder[i+1]
}

// earliestProducer picks, among the producers of the missing fields, the one
// that comes first in the journey.
func earliestProducer(missing []string) string {
	redirect := ""
	best := len(stepOrder)
	for _, field := range missing {
		producer, ok := fieldProducers[field]
		if !ok {
			continue
		}
		if i := stepIndex(producer); i >= 0 && i < best {
			best = i
			redirect = producer
		}
	}
	if redirect == "" {
		return stepOrder[0]
	}
	return redirect
}
