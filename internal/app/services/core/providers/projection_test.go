package providers

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProjectPatient(t *testing.T) {
	t.Run("Missing Fields Take Defaults", func(t *testing.T) {
		patient, ok := projectPatient(models.RawRecord{ID: "recX", Fields: []byte(`{}`)})
		require.True(t, ok)
		assert.Equal(t, "recX", patient.ID, "record ID stands in for a missing Patient ID")
		assert.Equal(t, constvars.DefaultPatientName, patient.Name)
		assert.Equal(t, 35, patient.Age)
		assert.Equal(t, constvars.DefaultPatientScore, patient.Score)
		assert.Equal(t, constvars.DefaultPatientFrontImage, patient.FrontImage)
		assert.Equal(t, constvars.DefaultPatientSideImage, patient.SideImage)
		assert.NotNil(t, patient.Findings)
	})

	t.Run("No Identifier Is Dropped", func(t *testing.T) {
		_, ok := projectPatient(models.RawRecord{Fields: []byte(`{"Name":"Ghost","Age":50}`)})
		assert.False(t, ok)
	})

	t.Run("Lookup Cells And Attachments", func(t *testing.T) {
		patient, ok := projectPatient(models.RawRecord{
			ID: "recY",
			Fields: []byte(`{
				"Patient ID": ["P-9"],
				"Age": "52",
				"Score": 140,
				"Areas of Concern": ["Eyebrows", "Jowls", "Elbows"],
				"Front Image": [{"url": "https://cdn.test/front.jpg"}],
				"Side Image": "https://cdn.test/side.jpg"
			}`),
		})
		require.True(t, ok)
		assert.Equal(t, "P-9", patient.ID)
		assert.Equal(t, 52, patient.Age)
		assert.Equal(t, 100, patient.Score, "scores are clamped")
		assert.Equal(t, []string{constvars.AreaForehead, constvars.AreaJawline, constvars.AreaOther}, patient.Areas)
		assert.Equal(t, "https://cdn.test/front.jpg", patient.FrontImage)
		assert.Equal(t, "https://cdn.test/side.jpg", patient.SideImage)
	})

	t.Run("Findings From Long Text JSON", func(t *testing.T) {
		patient, ok := projectPatient(models.RawRecord{
			ID: "recZ",
			Fields: []byte(`{
				"Score": 60,
				"Findings": "[{\"name\":\"Crow's Feet\",\"severity\":\"Moderate\",\"score\":55},{\"name\":\"Jowls\",\"severity\":\"extreme\",\"score\":80},{\"name\":\"Dark Circles\"}]"
			}`),
		})
		require.True(t, ok)
		require.Len(t, patient.Findings, 3)

		assert.Equal(t, constvars.SeverityModerate, patient.Findings[0].Severity)
		assert.Equal(t, constvars.AreaEyes, patient.Findings[0].Area)

		assert.Equal(t, constvars.SeveritySevere, patient.Findings[1].Severity, "unknown severity is derived from score")
		assert.Equal(t, constvars.AreaJawline, patient.Findings[1].Area)

		assert.Equal(t, 60, patient.Findings[2].Score, "missing finding score takes the patient score")
		assert.Equal(t, constvars.SeverityModerate, patient.Findings[2].Severity)
	})

	t.Run("Implausible Age Takes Default", func(t *testing.T) {
		for _, age := range []string{`-4`, `430`, `1e300`, `"-12"`, `"999999999999"`} {
			patient, ok := projectPatient(models.RawRecord{ID: "recA", Fields: []byte(`{"Age":` + age + `}`)})
			require.True(t, ok)
			assert.Equal(t, constvars.DefaultPatientAge, patient.Age, "age %s", age)
		}
	})

	t.Run("Fractional Numbers Are Rounded", func(t *testing.T) {
		patient, ok := projectPatient(models.RawRecord{ID: "recB", Fields: []byte(`{"Age":41.6,"Score":"72.4"}`)})
		require.True(t, ok)
		assert.Equal(t, 42, patient.Age)
		assert.Equal(t, 72, patient.Score)
	})
}

func TestToInt(t *testing.T) {
	t.Run("Out Of Range", func(t *testing.T) {
		_, ok := toInt(gjson.Parse(`1e19`))
		assert.False(t, ok)
		_, ok = toInt(gjson.Parse(`"-1e19"`))
		assert.False(t, ok)
	})

	t.Run("Not A Number", func(t *testing.T) {
		_, ok := toInt(gjson.Parse(`"NaN"`))
		assert.False(t, ok)
		_, ok = toInt(gjson.Parse(`true`))
		assert.False(t, ok)
	})
}

func TestStringField(t *testing.T) {
	t.Run("Column Names With Path Characters", func(t *testing.T) {
		fields := gjson.Parse(`{"Clinic.Name":"Lumen","Score (0-100)?":"88","Clinic":{"Name":"nested"}}`)
		assert.Equal(t, "Lumen", stringField(fields, "Clinic.Name"))
		assert.Equal(t, 88, intField(fields, "Score (0-100)?", 0))
	})
}
