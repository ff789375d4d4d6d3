package flow

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
)

// demoPatients is the patient-facing catalog. The analysis shown in the demo
// is read from here, there is no inference behind it.
var demoPatients = []models.DemoPatient{
	{
		Tag:         "early-aging",
		Label:       "Early Signs of Aging",
		Description: "Late 20s to mid 30s, first fine lines and mild volume changes.",
		Photo:       "/images/demo/early-aging.jpg",
		Score:       82,
		Findings: []models.Finding{
			{Name: "Forehead Lines", Area: constvars.AreaForehead, Severity: constvars.SeveritySubtle, Score: 18},
			{Name: "Crow's Feet", Area: constvars.AreaEyes, Severity: constvars.SeverityMild, Score: 34},
			{Name: "Dull Skin Tone", Area: constvars.AreaSkin, Severity: constvars.SeveritySubtle, Score: 22},
		},
	},
	{
		Tag:         "volume-loss",
		Label:       "Volume Loss",
		Description: "Mid 30s to 40s, hollowing under the eyes and flattened cheeks.",
		Photo:       "/images/demo/volume-loss.jpg",
		Score:       68,
		Findings: []models.Finding{
			{Name: "Under Eye Hollows", Area: constvars.AreaEyes, Severity: constvars.SeverityModerate, Score: 58},
			{Name: "Mid-Face Volume Loss", Area: constvars.AreaCheeks, Severity: constvars.SeverityModerate, Score: 62},
			{Name: "Thin Lips", Area: constvars.AreaLips, Severity: constvars.SeverityMild, Score: 41},
			{Name: "Nasolabial Folds", Area: constvars.AreaCheeks, Severity: constvars.SeverityMild, Score: 45},
		},
	},
	{
		Tag:         "structural-changes",
		Label:       "Structural Changes",
		Description: "Late 40s and beyond, deeper folds and a softer jawline.",
		Photo:       "/images/demo/structural-changes.jpg",
		Score:       54,
		Findings: []models.Finding{
			{Name: "Jowls", Area: constvars.AreaJawline, Severity: constvars.SeveritySevere, Score: 79},
			{Name: "Marionette Lines", Area: constvars.AreaLips, Severity: constvars.SeverityModerate, Score: 66},
			{Name: "Glabellar Lines", Area: constvars.AreaForehead, Severity: constvars.SeverityModerate, Score: 57},
			{Name: "Dorsal Hump", Area: constvars.AreaNose, Severity: constvars.SeverityMild, Score: 38},
			{Name: "Sun Damage", Area: constvars.AreaSkin, Severity: constvars.SeverityModerate, Score: 60},
		},
	},
}

type areaTreatment struct {
	Title      string
	Treatments []string
	Weeks      int
}

var areaTreatments = map[string]areaTreatment{
	constvars.AreaForehead: {Title: "Smooth the Upper Face", Treatments: []string{"Neuromodulator", "Microneedling"}, Weeks: 2},
	constvars.AreaEyes:     {Title: "Refresh the Eye Area", Treatments: []string{"Tear Trough Filler", "Neuromodulator"}, Weeks: 3},
	constvars.AreaCheeks:   {Title: "Restore Mid-Face Volume", Treatments: []string{"Cheek Filler", "Biostimulator"}, Weeks: 4},
	constvars.AreaNose:     {Title: "Refine the Profile", Treatments: []string{"Non-Surgical Rhinoplasty"}, Weeks: 2},
	constvars.AreaLips:     {Title: "Define the Lips", Treatments: []string{"Lip Filler", "Lip Flip"}, Weeks: 2},
	constvars.AreaJawline:  {Title: "Contour the Jawline", Treatments: []string{"Jawline Filler", "Radiofrequency Tightening"}, Weeks: 6},
	constvars.AreaEars:     {Title: "Rejuvenate the Earlobes", Treatments: []string{"Earlobe Filler"}, Weeks: 1},
	constvars.AreaSkin:     {Title: "Improve Skin Quality", Treatments: []string{"Chemical Peel", "IPL Photofacial"}, Weeks: 8},
	constvars.AreaOther:    {Title: "Personalized Consultation", Treatments: []string{"Provider Assessment"}, Weeks: 1},
}

var maintenancePhase = areaTreatment{
	Title:      "Maintain Your Results",
	Treatments: []string{"Medical-Grade Skincare", "Touch-Up Visit"},
	Weeks:      12,
}

func findDemoPatient(tag string) (models.DemoPatient, bool) {
	for _, patient := range demoPatients {
		if patient.Tag == tag {
			return patient, true
		}
	}
	return models.DemoPatient{}, false
}
