package airtable

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// staticDirectory serves a fixed set of rows with the same filter semantics
// as the Airtable formulas. It backs demo mode and local runs without an API
// key.
type staticDirectory struct {
	Tables map[string][]models.RawRecord
	Log    *zap.Logger
}

func NewStaticDirectory(tables map[string][]models.RawRecord, logger *zap.Logger) contracts.DirectoryClient {
	return &staticDirectory{
		Tables: tables,
		Log:    logger,
	}
}

// NewDemoDirectory returns the static directory loaded with the bundled demo
// practice and its patients.
func NewDemoDirectory(providerTable, patientTable string, logger *zap.Logger) contracts.DirectoryClient {
	return NewStaticDirectory(map[string][]models.RawRecord{
		providerTable: demoProviderRecords,
		patientTable:  demoPatientRecords,
	}, logger)
}

func (d *staticDirectory) ListRecords(ctx context.Context, table string, filter *models.Filter) ([]models.RawRecord, error) {
	d.Log.Info("staticDirectory.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTableKey, table),
		zap.String(constvars.LoggingFormulaKey, RenderFormula(filter)),
	)

	records := make([]models.RawRecord, 0)
	for _, record := range d.Tables[table] {
		if matches(record, filter) {
			records = append(records, record)
		}
	}
	return records, nil
}

func (d *staticDirectory) GetRecord(ctx context.Context, table, recordID string) (*models.RawRecord, error) {
	d.Log.Info("staticDirectory.GetRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTableKey, table),
	)

	for _, record := range d.Tables[table] {
		if record.ID != "" && record.ID == recordID {
			found := record
			return &found, nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(nil, fmt.Sprintf(constvars.ErrDevDirectoryRecordNotFound, recordID, table))
}

func matches(record models.RawRecord, filter *models.Filter) bool {
	if filter == nil {
		return true
	}

	value := gjson.GetBytes(record.Fields, gjson.Escape(filter.Field))
	switch filter.Mode {
	case models.FilterLinkedContains:
		var items []string
		if value.IsArray() {
			for _, item := range value.Array() {
				items = append(items, item.String())
			}
		} else if value.Exists() {
			items = strings.Split(value.String(), ",")
		}
		for _, item := range items {
			if strings.TrimSpace(item) == filter.Value {
				return true
			}
		}
		return false
	default:
		if value.IsArray() {
			return false
		}
		return value.Exists() && value.String() == filter.Value
	}
}

