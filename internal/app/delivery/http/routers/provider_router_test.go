package routers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testProvider = &models.Provider{ID: "recDemoProvider01", Name: "Lumen Aesthetics", Code: "DEMO-LUMEN"}
	pngHeader    = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")
)

func bearerToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testProvider.ID, testJWTSecret, 1)
	require.NoError(t, err)
	return constvars.AuthorizationBearerPrefix + token
}

func scanForm(t *testing.T, fields map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for field, content := range fields {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestProviderRouter_Login(t *testing.T) {
	t.Run("Valid Code Returns Token", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("Login", mock.Anything, testSessionID, "DEMO-LUMEN").Return("signed-token", testProvider, nil)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/login", strings.NewReader(`{"code":"  DEMO-LUMEN "}`))
		req.Header.Set(constvars.HeaderXSessionID, testSessionID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, `"token":"signed-token"`)
		assert.Contains(t, body, `"sessionId":"`+testSessionID+`"`)
		providerUsecase.AssertExpectations(t)
	})

	t.Run("Blank Code Is Unauthorized", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("Login", mock.Anything, mock.Anything, "").
			Return("", nil, exceptions.ErrInvalidAccessCode(nil, "missing required field Code"))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/login", strings.NewReader(`{"code":"   "}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		providerUsecase.AssertExpectations(t)
	})

	t.Run("Unknown Code Is Unauthorized", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("Login", mock.Anything, mock.Anything, "NOPE").
			Return("", nil, exceptions.ErrInvalidAccessCode(nil, "no provider record matches the given filter"))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/login", strings.NewReader(`{"code":"NOPE"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidAccessCode, decodeResponse(t, rr).Message)
	})

	t.Run("Upstream Failure Hides Upstream Body", func(t *testing.T) {
		upstreamErr := &exceptions.UpstreamError{Service: "airtable", StatusCode: 500, Body: "secret upstream detail"}
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("Login", mock.Anything, mock.Anything, "DEMO-LUMEN").
			Return("", nil, exceptions.ErrUpstream(upstreamErr, "directory table Providers could not be read"))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/login", strings.NewReader(`{"code":"DEMO-LUMEN"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret upstream detail")
		assert.Equal(t, constvars.ErrClientTryAgain, decodeResponse(t, rr).Message)
	})
}

func TestProviderRouter_Authenticated(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		providerUsecase.AssertNotCalled(t, "CurrentProvider", mock.Anything, mock.Anything)
	})

	t.Run("Token Signed With Another Secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT(testSessionID, testProvider.ID, "another-secret", 1)
		require.NoError(t, err)
		router := newTestRouter(new(MockFlowUsecase), new(MockProviderUsecase), new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Logged Out Session", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(nil, exceptions.ErrInvalidSession(nil))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Me Returns Provider Of Token Session", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(testProvider, nil)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		req.Header.Set(constvars.HeaderXSessionID, "8d6a3c1e-3f0b-4c55-9b7c-3f3d2a4b5c6d")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testSessionID, rr.Header().Get(constvars.HeaderXSessionID))
		assert.Contains(t, rr.Body.String(), `"name":"Lumen Aesthetics"`)
	})

	t.Run("Logout Clears Token Session", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(testProvider, nil)
		providerUsecase.On("Logout", mock.Anything, testSessionID).Return(nil)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		providerUsecase.AssertExpectations(t)
	})

	t.Run("List Patients", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(testProvider, nil)
		providerUsecase.On("ListPatients", mock.Anything, testProvider.ID).Return([]models.PatientRecord{
			{ID: "LUM-1001", Name: "Avery Stone"},
			{ID: "LUM-1002", Name: "Jordan Reyes"},
		}, nil)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total":2`)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(testProvider, nil)
		providerUsecase.On("GetPatient", mock.Anything, testProvider.ID, "LUM-9999").
			Return(nil, exceptions.ErrRecordNotFound(nil, "patient LUM-9999 is not in the patient set of provider recDemoProvider01"))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, new(MockScanUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/patients/LUM-9999", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProviderRouter_UploadScan(t *testing.T) {
	authenticated := func() *MockProviderUsecase {
		providerUsecase := new(MockProviderUsecase)
		providerUsecase.On("CurrentProvider", mock.Anything, testSessionID).Return(testProvider, nil)
		return providerUsecase
	}

	t.Run("Front And Side Are Analyzed", func(t *testing.T) {
		providerUsecase := authenticated()
		providerUsecase.On("GetPatient", mock.Anything, testProvider.ID, "LUM-1001").Return(&models.PatientRecord{ID: "LUM-1001"}, nil)
		scanUsecase := new(MockScanUsecase)
		scanUsecase.On("UploadScan", mock.Anything, testProvider.ID, "LUM-1001",
			mock.MatchedBy(func(photo *contracts.ScanPhoto) bool { return photo.ContentType == constvars.MIMEImagePNG }),
			mock.MatchedBy(func(photo *contracts.ScanPhoto) bool { return photo.ContentType == constvars.MIMEImagePNG }),
		).Return(&models.AnalysisResult{Score: 77}, nil)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, scanUsecase)

		body, contentType := scanForm(t, map[string][]byte{
			constvars.FormFieldFrontPhoto: pngHeader,
			constvars.FormFieldSidePhoto:  pngHeader,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/LUM-1001/scans", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"score":77`)
		scanUsecase.AssertExpectations(t)
	})

	t.Run("Missing Side Photo", func(t *testing.T) {
		scanUsecase := new(MockScanUsecase)
		router := newTestRouter(new(MockFlowUsecase), authenticated(), scanUsecase)

		body, contentType := scanForm(t, map[string][]byte{constvars.FormFieldFrontPhoto: pngHeader})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/LUM-1001/scans", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "side is required", decodeResponse(t, rr).Message)
		scanUsecase.AssertNotCalled(t, "UploadScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non Image Upload", func(t *testing.T) {
		router := newTestRouter(new(MockFlowUsecase), authenticated(), new(MockScanUsecase))

		body, contentType := scanForm(t, map[string][]byte{
			constvars.FormFieldFrontPhoto: []byte("plain text, not a photo"),
			constvars.FormFieldSidePhoto:  pngHeader,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/LUM-1001/scans", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidImageFormat, decodeResponse(t, rr).Message)
	})

	t.Run("Patient Of Another Provider", func(t *testing.T) {
		providerUsecase := authenticated()
		providerUsecase.On("GetPatient", mock.Anything, testProvider.ID, "HAR-2001").
			Return(nil, exceptions.ErrRecordNotFound(nil, "patient HAR-2001 is not in the patient set of provider recDemoProvider01"))
		scanUsecase := new(MockScanUsecase)
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, scanUsecase)

		body, contentType := scanForm(t, map[string][]byte{
			constvars.FormFieldFrontPhoto: pngHeader,
			constvars.FormFieldSidePhoto:  pngHeader,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/HAR-2001/scans", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		scanUsecase.AssertNotCalled(t, "UploadScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inference Failure", func(t *testing.T) {
		providerUsecase := authenticated()
		providerUsecase.On("GetPatient", mock.Anything, testProvider.ID, "LUM-1001").Return(&models.PatientRecord{ID: "LUM-1001"}, nil)
		scanUsecase := new(MockScanUsecase)
		scanUsecase.On("UploadScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUpstream(errors.New("connection refused"), "inference service responded with status 503"))
		router := newTestRouter(new(MockFlowUsecase), providerUsecase, scanUsecase)

		body, contentType := scanForm(t, map[string][]byte{
			constvars.FormFieldFrontPhoto: pngHeader,
			constvars.FormFieldSidePhoto:  pngHeader,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/LUM-1001/scans", body)
		req.Header.Set(constvars.HeaderContentType, contentType)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Quota Exceeded", func(t *testing.T) {
		internalConfig := newTestConfig()
		internalConfig.Scan = config.AppScan{QuotaPerWindow: 1, QuotaWindowInSeconds: 3600}
		providerUsecase := authenticated()
		providerUsecase.On("GetPatient", mock.Anything, testProvider.ID, "LUM-1001").Return(&models.PatientRecord{ID: "LUM-1001"}, nil)
		scanUsecase := new(MockScanUsecase)
		scanUsecase.On("UploadScan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&models.AnalysisResult{Score: 77}, nil)
		router := newTestRouterWithConfig(internalConfig, new(MockFlowUsecase), providerUsecase, scanUsecase)

		upload := func() *httptest.ResponseRecorder {
			body, contentType := scanForm(t, map[string][]byte{
				constvars.FormFieldFrontPhoto: pngHeader,
				constvars.FormFieldSidePhoto:  pngHeader,
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/patients/LUM-1001/scans", body)
			req.Header.Set(constvars.HeaderContentType, contentType)
			req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, testSessionID))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusCreated, upload().Code)
		rr := upload()
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))
		scanUsecase.AssertNumberOfCalls(t, "UploadScan", 1)
	})
}
