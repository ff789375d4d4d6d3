package flow

import (
	"aesthetics-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTable(t *testing.T) {
	t.Run("Every Step Has Requirements Entry", func(t *testing.T) {
		for _, step := range stepOrder {
			_, ok := stepRequirements[step]
			assert.True(t, ok, "step %s should be in the requirement table", step)
		}
	})

	t.Run("Every Required Field Has Earlier Producer", func(t *testing.T) {
		for step, fields := range stepRequirements {
			for _, field := range fields {
				producer, ok := fieldProducers[field]
				assert.True(t, ok, "field %s should have a producer", field)
				assert.Less(t, stepIndex(producer), stepIndex(step), "producer of %s must come before %s", field, step)
			}
		}
	})

	t.Run("Next Step", func(t *testing.T) {
		assert.Equal(t, constvars.StepQuestionnaire, nextStep(constvars.StepPatientSelection))
		assert.Equal(t, constvars.StepAnalysis, nextStep(constvars.StepQuestionnaire))
		assert.Equal(t, constvars.StepPatientSelection, nextStep(constvars.StepValue), "terminal step wraps around")
	})

	t.Run("Earliest Producer", func(t *testing.T) {
		assert.Equal(t, constvars.StepPatientSelection, earliestProducer([]string{constvars.SlotUserAnswers, constvars.SlotUserPhoto}))
		assert.Equal(t, constvars.StepQuestionnaire, earliestProducer([]string{constvars.SlotUserAnswers}))
		assert.Equal(t, constvars.StepAnalysisResults, earliestProducer([]string{constvars.FieldCategory}))
		assert.Equal(t, constvars.StepPatientSelection, earliestProducer(nil))
	})
}
