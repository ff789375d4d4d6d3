package utils

import (
	"aesthetics-service/internal/pkg/constvars"
	"strings"
)

// NormalizeSeverity keeps a known severity and derives the tier from score
// for anything else.
func NormalizeSeverity(severity string, score int) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case constvars.SeveritySubtle:
		return constvars.SeveritySubtle
	case constvars.SeverityMild:
		return constvars.SeverityMild
	case constvars.SeverityModerate:
		return constvars.SeverityModerate
	case constvars.SeveritySevere:
		return constvars.SeveritySevere
	}
	return SeverityFromScore(score)
}

func SeverityFromScore(score int) string {
	switch {
	case score < 25:
		return constvars.SeveritySubtle
	case score < 50:
		return constvars.SeverityMild
	case score < 75:
		return constvars.SeverityModerate
	default:
		return constvars.SeveritySevere
	}
}

// ClampScore bounds a score to 0-100.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
