package airtable

import (
	"aesthetics-service/internal/app/models"
	"fmt"
	"strings"
)

var formulaQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// RenderFormula turns a filter into an Airtable filterByFormula expression.
// Linked and lookup cells are joined with commas and matched element-wise so
// that "GLOW" does not match "GLOW-2024".
func RenderFormula(filter *models.Filter) string {
	if filter == nil {
		return ""
	}

	value := formulaQuoter.Replace(filter.Value)
	switch filter.Mode {
	case models.FilterLinkedContains:
		return fmt.Sprintf(`FIND(',%s,', ',' & ARRAYJOIN({%s}, ',') & ',')`, value, filter.Field)
	default:
		return fmt.Sprintf(`{%s} = '%s'`, filter.Field, value)
	}
}
