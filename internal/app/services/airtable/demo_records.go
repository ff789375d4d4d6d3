package airtable

import "aesthetics-service/internal/app/models"

var demoProviderRecords = []models.RawRecord{
	{
		ID:          "recDemoProvider01",
		CreatedTime: "2024-01-08T09:00:00.000Z",
		Fields:      []byte(`{"Name":"Lumen Aesthetics","Code":"DEMO-LUMEN","Email":"frontdesk@lumen.example","Phone":"+1 555 0100","Specialty":"Facial Aesthetics"}`),
	},
	{
		ID:          "recDemoProvider02",
		CreatedTime: "2024-02-12T09:00:00.000Z",
		Fields:      []byte(`{"Name":"Harbor Dermatology","Code":"DEMO-HARBOR","Email":"care@harbor.example","Phone":"+1 555 0142","Specialty":"Dermatology"}`),
	},
}

// demoPatientRecords mixes the linked "Provider Code" lookup with rows that
// only carry the plain "Provider" name, and includes rows with missing
// fields, so the demo exercises every projection default.
var demoPatientRecords = []models.RawRecord{
	{
		ID:          "recDemoPatient01",
		CreatedTime: "2024-03-01T10:00:00.000Z",
		Fields: []byte(`{
			"Patient ID": "LUM-1001",
			"Name": "Avery Stone",
			"Age": 38,
			"Email": "avery@example.com",
			"Last Visit": "2024-05-02",
			"Scan Date": "2024-05-02",
			"Score": 72,
			"Provider Code": ["DEMO-LUMEN"],
			"Areas of Concern": ["Crow's Feet", "Forehead Lines"],
			"Findings": [
				{"name": "Crow's Feet", "severity": "mild", "score": 42},
				{"name": "Forehead Lines", "severity": "moderate", "score": 58}
			],
			"Front Image": [{"url": "/images/demo/early-aging.jpg"}]
		}`),
	},
	{
		ID:          "recDemoPatient02",
		CreatedTime: "2024-03-04T10:00:00.000Z",
		Fields: []byte(`{
			"Patient ID": "LUM-1002",
			"Name": "Jordan Reyes",
			"Age": "46",
			"Score": 61,
			"Provider Code": ["DEMO-LUMEN"],
			"Areas of Concern": "Cheeks, Nasolabial Folds, Lips",
			"Findings": "[{\"name\":\"Mid-Face Volume Loss\",\"area\":\"cheeks\",\"score\":63},{\"name\":\"Thin Lips\",\"severity\":\"mild\",\"score\":40}]"
		}`),
	},
	{
		ID:          "recDemoPatient03",
		CreatedTime: "2024-03-09T10:00:00.000Z",
		Fields: []byte(`{
			"Provider Code": ["DEMO-LUMEN"],
			"Findings": ["Sun Damage"]
		}`),
	},
	{
		ID:          "recDemoPatient04",
		CreatedTime: "2024-04-15T10:00:00.000Z",
		Fields: []byte(`{
			"Patient ID": "HAR-2001",
			"Name": "Sam Lee",
			"Age": 55,
			"Score": 48,
			"Provider": "Harbor Dermatology",
			"Areas of Concern": ["Jowls", "Pigmentation"],
			"Findings": [
				{"name": "Jowls", "severity": "severe", "score": 81},
				{"name": "Pigmentation", "severity": "unknown", "score": 30}
			]
		}`),
	},
	{
		CreatedTime: "2024-04-20T10:00:00.000Z",
		Fields:      []byte(`{"Name":"Unlinked Import","Provider":"Harbor Dermatology"}`),
	},
}
