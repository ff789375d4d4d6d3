package inference

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const serviceName = "inference"

type analyzeRequest struct {
	FrontImageURL string `json:"front_image_url"`
	SideImageURL  string `json:"side_image_url"`
}

type analyzeResponse struct {
	Score    float64 `json:"score"`
	Findings []struct {
		Name     string  `json:"name"`
		Area     string  `json:"area"`
		Severity string  `json:"severity"`
		Score    float64 `json:"score"`
	} `json:"findings"`
}

type inferenceClient struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
	Log        *zap.Logger
	now        func() time.Time
}

// NewInferenceClient returns the client of the hosted analysis model. The
// endpoint takes public URLs of the front and side photos.
func NewInferenceClient(cfg config.AppInference, logger *zap.Logger) contracts.InferenceClient {
	return &inferenceClient{
		Endpoint: strings.TrimSpace(cfg.Endpoint),
		Token:    cfg.Token,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutInSeconds) * time.Second,
		},
		Log: logger,
		now: time.Now,
	}
}

func (c *inferenceClient) Analyze(ctx context.Context, frontImageURL, sideImageURL string) (*models.AnalysisResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("inferenceClient.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.Endpoint == "" {
		return nil, exceptions.ErrMisconfigured(constvars.ErrDevInferenceMissingEndpoint)
	}

	requestJSON, err := json.Marshal(analyzeRequest{FrontImageURL: frontImageURL, SideImageURL: sideImageURL})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.Endpoint, bytes.NewReader(requestJSON))
	if err != nil {
		c.Log.Error("inferenceClient.Analyze error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("inferenceClient.Analyze error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		c.Log.Error("inferenceClient.Analyze inference service responded with an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatus, resp.StatusCode),
			zap.String(constvars.LoggingUpstreamBody, string(body)),
		)
		upstreamErr := &exceptions.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Body: string(body)}
		return nil, exceptions.ErrUpstream(upstreamErr, fmt.Sprintf(constvars.ErrDevInferenceUpstreamStatus, resp.StatusCode))
	}

	var response analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		c.Log.Error("inferenceClient.Analyze error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInferenceDecodeResponse(err)
	}

	result := &models.AnalysisResult{
		Score:      utils.ClampScore(int(response.Score)),
		Findings:   make([]models.Finding, 0, len(response.Findings)),
		FrontImage: frontImageURL,
		SideImage:  sideImageURL,
		AnalyzedAt: c.now().UTC().Format(time.RFC3339),
	}
	for _, item := range response.Findings {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		score := utils.ClampScore(int(item.Score))
		area := item.Area
		if area == "" {
			area = item.Name
		}
		result.Findings = append(result.Findings, models.Finding{
			Name:     strings.TrimSpace(item.Name),
			Area:     utils.GetInternalAreaName(area),
			Severity: utils.NormalizeSeverity(item.Severity, score),
			Score:    score,
		})
	}

	c.Log.Info("inferenceClient.Analyze succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Findings)),
	)
	return result, nil
}
