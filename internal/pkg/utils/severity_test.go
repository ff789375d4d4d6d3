package utils

import (
	"aesthetics-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {
	t.Run("Derived From Score", func(t *testing.T) {
		assert.Equal(t, constvars.SeveritySubtle, SeverityFromScore(0))
		assert.Equal(t, constvars.SeverityMild, SeverityFromScore(25))
		assert.Equal(t, constvars.SeverityModerate, SeverityFromScore(74))
		assert.Equal(t, constvars.SeveritySevere, SeverityFromScore(75))
	})

	t.Run("Known Severity Kept", func(t *testing.T) {
		assert.Equal(t, constvars.SeverityMild, NormalizeSeverity(" Mild ", 90))
		assert.Equal(t, constvars.SeveritySevere, NormalizeSeverity("extreme", 80))
	})

	t.Run("Clamp", func(t *testing.T) {
		assert.Equal(t, 0, ClampScore(-4))
		assert.Equal(t, 100, ClampScore(140))
		assert.Equal(t, 64, ClampScore(64))
	})
}
