package providers

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/utils"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// projectProvider reads a provider row. The directory record ID becomes the
// provider ID.
func projectProvider(record models.RawRecord) *models.Provider {
	fields := gjson.ParseBytes(record.Fields)
	return &models.Provider{
		ID:        record.ID,
		Name:      stringField(fields, constvars.DirectoryFieldProviderName),
		Code:      stringField(fields, constvars.DirectoryFieldProviderCode),
		Email:     stringField(fields, constvars.DirectoryFieldProviderEmail),
		Phone:     stringField(fields, constvars.DirectoryFieldProviderPhone),
		Specialty: stringField(fields, constvars.DirectoryFieldProviderSpecialty),
	}
}

// projectPatient maps a patient row field by field. Missing fields take the
// Default* values from constvars. The second return value is false when the
// row has neither a "Patient ID" nor a record ID.
func projectPatient(record models.RawRecord) (*models.PatientRecord, bool) {
	fields := gjson.ParseBytes(record.Fields)

	id := stringField(fields, constvars.DirectoryFieldPatientID)
	if id == "" {
		id = strings.TrimSpace(record.ID)
	}
	if id == "" {
		return nil, false
	}

	patient := &models.PatientRecord{
		ID:               id,
		Name:             stringField(fields, constvars.DirectoryFieldPatientName),
		Age:              ageField(fields, constvars.DirectoryFieldPatientAge),
		Email:            stringField(fields, constvars.DirectoryFieldPatientEmail),
		Phone:            stringField(fields, constvars.DirectoryFieldPatientPhone),
		LastVisit:        stringField(fields, constvars.DirectoryFieldPatientLastVisit),
		ScanDate:         stringField(fields, constvars.DirectoryFieldPatientScanDate),
		Score:            utils.ClampScore(intField(fields, constvars.DirectoryFieldPatientScore, constvars.DefaultPatientScore)),
		Areas:            utils.MapAreaNames(stringListField(fields, constvars.DirectoryFieldPatientConcerns)),
		FrontImage:       imageField(fields, constvars.DirectoryFieldPatientFront),
		SideImage:        imageField(fields, constvars.DirectoryFieldPatientSide),
		AirtableRecordID: record.ID,
	}
	if patient.Name == "" {
		patient.Name = constvars.DefaultPatientName
	}
	if patient.FrontImage == "" {
		patient.FrontImage = constvars.DefaultPatientFrontImage
	}
	if patient.SideImage == "" {
		patient.SideImage = constvars.DefaultPatientSideImage
	}
	patient.Findings = projectFindings(fields.Get(gjson.Escape(constvars.DirectoryFieldPatientFindings)), patient.Score)
	return patient, true
}

// projectFindings accepts a list of finding objects, a list of plain names or
// a long-text cell holding JSON. A finding without a score takes the
// patient's score.
func projectFindings(value gjson.Result, patientScore int) []models.Finding {
	if value.Type == gjson.String && gjson.Valid(value.Str) {
		value = gjson.Parse(value.Str)
	}

	findings := make([]models.Finding, 0)
	if !value.IsArray() {
		return findings
	}

	value.ForEach(func(_, item gjson.Result) bool {
		var finding models.Finding
		switch {
		case item.IsObject():
			finding.Name = strings.TrimSpace(item.Get("name").String())
			finding.Score = patientScore
			if score := item.Get("score"); score.Exists() {
				if parsed, ok := toInt(score); ok {
					finding.Score = parsed
				}
			}
			finding.Area = strings.TrimSpace(item.Get("area").String())
			finding.Severity = strings.TrimSpace(item.Get("severity").String())
		case item.Type == gjson.String:
			finding.Name = strings.TrimSpace(item.Str)
			finding.Score = patientScore
		default:
			return true
		}
		if finding.Name == "" {
			return true
		}

		finding.Score = utils.ClampScore(finding.Score)
		finding.Severity = utils.NormalizeSeverity(finding.Severity, finding.Score)
		if finding.Area == "" {
			finding.Area = utils.GetInternalAreaName(finding.Name)
		} else {
			finding.Area = utils.GetInternalAreaName(finding.Area)
		}
		findings = append(findings, finding)
		return true
	})
	return findings
}

// first unwraps lookup and rollup cells, which the directory returns as
// single element arrays.
func first(value gjson.Result) gjson.Result {
	if value.IsArray() {
		items := value.Array()
		if len(items) == 0 {
			return gjson.Result{}
		}
		return items[0]
	}
	return value
}

func stringField(fields gjson.Result, name string) string {
	value := first(fields.Get(gjson.Escape(name)))
	if !value.Exists() || value.Type == gjson.Null || value.IsObject() {
		return ""
	}
	return strings.TrimSpace(value.String())
}

func intField(fields gjson.Result, name string, fallback int) int {
	value := first(fields.Get(gjson.Escape(name)))
	if parsed, ok := toInt(value); ok {
		return parsed
	}
	return fallback
}

// ageField reads the patient age. Ages outside MinPatientAge..MaxPatientAge
// are data entry errors and take the default.
func ageField(fields gjson.Result, name string) int {
	age := intField(fields, name, constvars.DefaultPatientAge)
	if age < constvars.MinPatientAge || age > constvars.MaxPatientAge {
		return constvars.DefaultPatientAge
	}
	return age
}

// toInt rounds numeric and numeric-text cells. Values that do not fit an
// int32 are rejected.
func toInt(value gjson.Result) (int, bool) {
	var number float64
	switch value.Type {
	case gjson.Number:
		number = value.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.Str), 64)
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	number = math.Round(number)
	if number < math.MinInt32 || number > math.MaxInt32 {
		return 0, false
	}
	return int(number), true
}

// stringListField reads multi-select cells as well as comma separated text.
func stringListField(fields gjson.Result, name string) []string {
	value := fields.Get(gjson.Escape(name))
	var list []string
	switch {
	case value.IsArray():
		value.ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.String {
				list = append(list, item.Str)
			}
			return true
		})
	case value.Type == gjson.String:
		list = strings.Split(value.Str, ",")
	}
	return list
}

// imageField reads an attachment cell ({url} objects) or a plain URL.
func imageField(fields gjson.Result, name string) string {
	value := first(fields.Get(gjson.Escape(name)))
	if value.IsObject() {
		return strings.TrimSpace(value.Get("url").String())
	}
	if value.Type == gjson.String {
		return strings.TrimSpace(value.Str)
	}
	return ""
}
