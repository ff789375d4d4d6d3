package controllers

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/dto/requests"
	"aesthetics-service/internal/pkg/dto/responses"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FlowController struct {
	Log            *zap.Logger
	FlowUsecase    contracts.FlowUsecase
	InternalConfig *config.InternalConfig
}

func NewFlowController(logger *zap.Logger, flowUsecase contracts.FlowUsecase, internalConfig *config.InternalConfig) *FlowController {
	return &FlowController{
		Log:            logger,
		FlowUsecase:    flowUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *FlowController) GetDemoPatients(w http.ResponseWriter, r *http.Request) {
	patients := ctrl.FlowUsecase.DemoPatients(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDemoPatientsSuccessMessage, patients)
}

// GetStep answers whether a step can render for the caller's session and,
// when it can, attaches the data the step shows.
func (ctrl *FlowController) GetStep(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())
	step := chi.URLParam(r, constvars.URLParamStep)
	ctrl.Log.Info("FlowController.GetStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepKey, step),
	)

	query := map[string]string{}
	if category := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamCategory)); category != "" {
		query[constvars.FieldCategory] = category
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	view := responses.StepView{
		StepDecision: ctrl.FlowUsecase.CheckPrerequisites(ctx, sessionID, step, query),
	}

	if view.Render {
		var err error
		switch step {
		case constvars.StepAnalysisResults:
			view.Analysis, err = ctrl.FlowUsecase.Results(ctx, sessionID)
		case constvars.StepAnalysisDetail:
			view.Detail, err = ctrl.FlowUsecase.Detail(ctx, sessionID, query[constvars.FieldCategory])
		case constvars.StepJourney:
			view.Journey, err = ctrl.FlowUsecase.Journey(ctx, sessionID)
		}
		if err != nil {
			buildUsecaseError(ctrl.Log, w, err)
			return
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckStepSuccessMessage, view)
}

func (ctrl *FlowController) AdvanceStep(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())
	step := chi.URLParam(r, constvars.URLParamStep)
	ctrl.Log.Info("FlowController.AdvanceStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepKey, step),
	)

	// Steps without a payload may be posted with an empty body.
	request := new(requests.AdvanceStep)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		ctrl.Log.Error("FlowController.AdvanceStep error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	next, err := ctrl.FlowUsecase.Advance(ctx, sessionID, step, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdvanceStepSuccessMessage, responses.AdvanceStep{
		Step:     step,
		NextStep: next,
	})
}

func (ctrl *FlowController) ResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := utils.GetSessionID(r.Context())
	ctrl.Log.Info("FlowController.ResetSession called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.FlowUsecase.Reset(ctx, sessionID); err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetSessionSuccessMessage, responses.SessionReset{
		SessionID: sessionID,
		NextStep:  constvars.StepPatientSelection,
	})
}

func (ctrl *FlowController) SetPreferences(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("FlowController.SetPreferences called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Preferences)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("FlowController.SetPreferences error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	preferences, err := ctrl.FlowUsecase.SetPreferences(ctx, utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetPreferencesSuccessMessage, preferences)
}

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

func buildUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
