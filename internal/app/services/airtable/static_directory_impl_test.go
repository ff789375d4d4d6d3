package airtable

import (
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticDirectory(t *testing.T) {
	ctx := context.Background()
	directory := NewDemoDirectory(constvars.AirtableDefaultProviderTable, constvars.AirtableDefaultPatientTable, zap.NewNop())

	t.Run("Provider By Code", func(t *testing.T) {
		records, err := directory.ListRecords(ctx, constvars.AirtableDefaultProviderTable, &models.Filter{
			Field: constvars.DirectoryFieldProviderCode,
			Value: "DEMO-LUMEN",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "recDemoProvider01", records[0].ID)
	})

	t.Run("Linked Code Matches Whole Elements", func(t *testing.T) {
		records, err := directory.ListRecords(ctx, constvars.AirtableDefaultPatientTable, &models.Filter{
			Field: constvars.DirectoryFieldPatientProviderCode,
			Value: "DEMO-LUMEN",
			Mode:  models.FilterLinkedContains,
		})
		require.NoError(t, err)
		assert.Len(t, records, 3)

		records, err = directory.ListRecords(ctx, constvars.AirtableDefaultPatientTable, &models.Filter{
			Field: constvars.DirectoryFieldPatientProviderCode,
			Value: "DEMO",
			Mode:  models.FilterLinkedContains,
		})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Harbor Patients Only Carry The Name", func(t *testing.T) {
		records, err := directory.ListRecords(ctx, constvars.AirtableDefaultPatientTable, &models.Filter{
			Field: constvars.DirectoryFieldPatientProviderCode,
			Value: "DEMO-HARBOR",
			Mode:  models.FilterLinkedContains,
		})
		require.NoError(t, err)
		assert.Empty(t, records)

		records, err = directory.ListRecords(ctx, constvars.AirtableDefaultPatientTable, &models.Filter{
			Field: constvars.DirectoryFieldPatientProviderName,
			Value: "Harbor Dermatology",
		})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Get Record", func(t *testing.T) {
		record, err := directory.GetRecord(ctx, constvars.AirtableDefaultProviderTable, "recDemoProvider02")
		require.NoError(t, err)
		assert.Equal(t, "recDemoProvider02", record.ID)

		_, err = directory.GetRecord(ctx, constvars.AirtableDefaultProviderTable, "recNope")
		assert.True(t, errors.Is(err, exceptions.ErrNotFound))
	})
}
