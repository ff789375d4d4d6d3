package controllers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/dto/requests"
	"aesthetics-service/internal/pkg/dto/responses"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
	ScanUsecase     contracts.ScanUsecase
	InternalConfig  *config.InternalConfig
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase, scanUsecase contracts.ScanUsecase, internalConfig *config.InternalConfig) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
		ScanUsecase:     scanUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ProviderController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ProviderLogin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ProviderController.Login error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Code = strings.TrimSpace(request.Code)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	sessionID := utils.GetSessionID(r.Context())
	token, provider, err := ctrl.ProviderUsecase.Login(ctx, sessionID, request.Code)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderLoginSuccessMessage, responses.ProviderLogin{
		Token:     token,
		SessionID: sessionID,
		Provider:  provider,
	})
}

func (ctrl *ProviderController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ProviderController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.ProviderUsecase.Logout(ctx, utils.GetSessionID(r.Context())); err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderLogoutSuccessMessage, nil)
}

func (ctrl *ProviderController) Me(w http.ResponseWriter, r *http.Request) {
	provider, ok := utils.GetProvider(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderSuccessMessage, provider)
}

func (ctrl *ProviderController) ListPatients(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	provider, ok := utils.GetProvider(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	patients, err := ctrl.ProviderUsecase.ListPatients(ctx, provider.ID)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, responses.PatientList{
		Total:    len(patients),
		Patients: patients,
	})
}

func (ctrl *ProviderController) GetPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("ProviderController.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	provider, ok := utils.GetProvider(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	patient, err := ctrl.ProviderUsecase.GetPatient(ctx, provider.ID, patientID)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, patient)
}

// UploadScan takes a multipart form with a front and a side photo of one of
// the provider's patients and returns the analysis of the pair.
func (ctrl *ProviderController) UploadScan(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("ProviderController.UploadScan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	provider, ok := utils.GetProvider(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	maxSize := ctrl.InternalConfig.Minio.ScanMaxUploadSizeInMB
	if err := r.ParseMultipartForm(2 * maxSize << 20); err != nil {
		ctrl.Log.Error("ProviderController.UploadScan error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	front, closeFront, err := ctrl.formPhoto(r, constvars.FormFieldFrontPhoto, maxSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closeFront()

	side, closeSide, err := ctrl.formPhoto(r, constvars.FormFieldSidePhoto, maxSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closeSide()

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	// Only patients of the calling provider can be scanned.
	if _, err := ctrl.ProviderUsecase.GetPatient(ctx, provider.ID, patientID); err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	analysis, err := ctrl.ScanUsecase.UploadScan(ctx, provider.ID, patientID, front, side)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadScanSuccessMessage, responses.ScanResult{
		PatientID: patientID,
		Analysis:  analysis,
	})
}

func (ctrl *ProviderController) formPhoto(r *http.Request, field string, maxSizeInMB int64) (*contracts.ScanPhoto, func(), error) {
	file, fileHeader, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, exceptions.ErrMissingRequiredField(field)
		}
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType, err := utils.ValidateImage(file, fileHeader, maxSizeInMB)
	if err != nil {
		file.Close()
		return nil, nil, exceptions.ErrImageValidation(err)
	}

	photo := &contracts.ScanPhoto{
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: contentType,
	}
	return photo, func() { file.Close() }, nil
}
