package providers

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"strings"
)

// FilterStrategy builds the directory filter that selects the patients of a
// provider. Build returns nil when the provider lacks the value the strategy
// matches on, and the strategy is skipped.
type FilterStrategy struct {
	Name  string
	Build func(provider *models.Provider) *models.Filter
}

// DefaultPatientFilterStrategies is tried in order until one yields rows.
// Patient rows link the provider through the "Provider Code" lookup on most
// bases, while older rows only carry the provider name as plain text.
var DefaultPatientFilterStrategies = []FilterStrategy{
	{
		Name: constvars.FilterStrategyProviderCode,
		Build: func(provider *models.Provider) *models.Filter {
			if strings.TrimSpace(provider.Code) == "" {
				return nil
			}
			return &models.Filter{
				Field: constvars.DirectoryFieldPatientProviderCode,
				Value: provider.Code,
				Mode:  models.FilterLinkedContains,
			}
		},
	},
	{
		Name: constvars.FilterStrategyProviderName,
		Build: func(provider *models.Provider) *models.Filter {
			if strings.TrimSpace(provider.Name) == "" {
				return nil
			}
			return &models.Filter{
				Field: constvars.DirectoryFieldPatientProviderName,
				Value: provider.Name,
				Mode:  models.FilterEquals,
			}
		},
	},
}
