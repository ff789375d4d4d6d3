package airtable

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const serviceName = "airtable"

type listRecordsResponse struct {
	Records []models.RawRecord `json:"records"`
	Offset  string             `json:"offset"`
}

type airtableClient struct {
	BaseUrl    string
	BaseID     string
	APIKey     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewAirtableClient(cfg config.AppAirtable, logger *zap.Logger) contracts.DirectoryClient {
	requestsPerSecond := cfg.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = constvars.AirtableRequestsPerSecond
	}
	baseUrl := cfg.BaseURL
	if baseUrl == "" {
		baseUrl = constvars.AirtableDefaultBaseURL
	}

	return &airtableClient{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		BaseID:  cfg.BaseID,
		APIKey:  cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		Log:     logger,
	}
}

func (c *airtableClient) ListRecords(ctx context.Context, table string, filter *models.Filter) ([]models.RawRecord, error) {
	requestID := utils.GetRequestID(ctx)
	formula := RenderFormula(filter)
	c.Log.Info("airtableClient.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTableKey, table),
		zap.String(constvars.LoggingFormulaKey, formula),
	)

	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	records := make([]models.RawRecord, 0)
	offset := ""
	for {
		query := url.Values{}
		if formula != "" {
			query.Set(constvars.AirtableQueryFilterFormula, formula)
		}
		if offset != "" {
			query.Set(constvars.AirtableQueryOffset, offset)
		}

		var page listRecordsResponse
		if err := c.get(ctx, c.tableUrl(table)+"?"+query.Encode(), table, "", &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	c.Log.Info("airtableClient.ListRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTableKey, table),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, nil
}

func (c *airtableClient) GetRecord(ctx context.Context, table, recordID string) (*models.RawRecord, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("airtableClient.GetRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTableKey, table),
	)

	if err := c.checkConfig(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(recordID) == "" {
		return nil, exceptions.ErrRecordNotFound(nil, fmt.Sprintf(constvars.ErrDevDirectoryRecordNotFound, recordID, table))
	}

	record := new(models.RawRecord)
	err := c.get(ctx, c.tableUrl(table)+"/"+url.PathEscape(recordID), table, recordID, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *airtableClient) checkConfig() error {
	if c.APIKey == "" {
		return exceptions.ErrMisconfigured(constvars.ErrDevDirectoryMissingAPIKey)
	}
	if c.BaseID == "" {
		return exceptions.ErrMisconfigured(constvars.ErrDevDirectoryMissingBase)
	}
	return nil
}

func (c *airtableClient) tableUrl(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.BaseUrl, url.PathEscape(c.BaseID), url.PathEscape(table))
}

// get performs one rate limited request and decodes a 2xx body into out. A
// 404 on a single record lookup is reported as NotFound.
func (c *airtableClient) get(ctx context.Context, endpoint, table, recordID string, out interface{}) error {
	requestID := utils.GetRequestID(ctx)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("airtableClient.get rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("airtableClient.get error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.APIKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("airtableClient.get error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		upstreamErr := &exceptions.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		c.Log.Error("airtableClient.get directory responded with an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTableKey, table),
			zap.Int(constvars.LoggingUpstreamStatus, resp.StatusCode),
			zap.String(constvars.LoggingUpstreamBody, upstreamErr.Body),
		)
		if resp.StatusCode == constvars.StatusNotFound && recordID != "" {
			return exceptions.ErrRecordNotFound(upstreamErr, fmt.Sprintf(constvars.ErrDevDirectoryRecordNotFound, recordID, table))
		}
		return exceptions.ErrUpstream(upstreamErr, fmt.Sprintf(constvars.ErrDevDirectoryUpstreamStatus, resp.StatusCode, table))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("airtableClient.get error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDirectoryDecodeResponse(err, table)
	}
	return nil
}
