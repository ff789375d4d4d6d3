package flow

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/models"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/dto/requests"
	"aesthetics-service/internal/pkg/exceptions"
	"aesthetics-service/internal/pkg/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// answerKeyConcernAreas holds the concerns mapped to internal area tags. It
// is written next to the raw answers when the questionnaire completes.
const answerKeyConcernAreas = "concernAreas"

type flowUsecase struct {
	SessionStore contracts.SessionStore
	Log          *zap.Logger
	now          func() time.Time
}

func NewFlowUsecase(sessionStore contracts.SessionStore, logger *zap.Logger) contracts.FlowUsecase {
	return &flowUsecase{
		SessionStore: sessionStore,
		Log:          logger,
		now:          time.Now,
	}
}

func (uc *flowUsecase) DemoPatients(ctx context.Context) []models.DemoPatient {
	patients := make([]models.DemoPatient, len(demoPatients))
	copy(patients, demoPatients)
	return patients
}

func (uc *flowUsecase) CheckPrerequisites(ctx context.Context, sessionID, step string, query map[string]string) models.StepDecision {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.CheckPrerequisites called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingStepKey, step),
	)

	decision := uc.checkPrerequisites(ctx, sessionID, step, query, true)
	if !decision.Render {
		uc.Log.Info("flowUsecase.CheckPrerequisites redirecting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStepKey, step),
			zap.String(constvars.LoggingRedirectKey, decision.RedirectTo),
			zap.Strings(constvars.LoggingSlotKey, decision.Missing),
		)
	}
	return decision
}

func (uc *flowUsecase) Advance(ctx context.Context, sessionID, step string, payload *requests.AdvanceStep) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.Advance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingStepKey, step),
	)

	if !isKnownStep(step) {
		return "", exceptions.ErrUnknownStep(step)
	}
	if payload == nil {
		payload = &requests.AdvanceStep{}
	}

	decision := uc.checkPrerequisites(ctx, sessionID, step, nil, false)
	if !decision.Render {
		return "", exceptions.ErrMissingRequiredField(decision.Missing[0])
	}

	switch step {
	case constvars.StepPatientSelection:
		if err := uc.selectPatient(ctx, sessionID, payload); err != nil {
			return "", err
		}
	case constvars.StepQuestionnaire:
		if err := uc.submitAnswers(ctx, sessionID, payload.UserAnswers); err != nil {
			return "", err
		}
	case constvars.StepAnalysisResults:
		request := &requests.CategorySelection{Category: payload.Category}
		if err := utils.ValidateStruct(request); err != nil {
			return "", exceptions.ErrInputValidation(err)
		}
	case constvars.StepValue:
		if err := uc.Reset(ctx, sessionID); err != nil {
			return "", err
		}
	}

	next := nextStep(step)
	uc.Log.Info("flowUsecase.Advance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepKey, step),
		zap.String(constvars.LoggingRedirectKey, next),
	)
	return next, nil
}

func (uc *flowUsecase) Reset(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if err := uc.SessionStore.Clear(ctx, sessionID); err != nil {
		uc.Log.Error("flowUsecase.Reset error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *flowUsecase) Results(ctx context.Context, sessionID string) (*models.AnalysisResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.Results called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	decision := uc.checkPrerequisites(ctx, sessionID, constvars.StepAnalysisResults, nil, false)
	if !decision.Render {
		return nil, exceptions.ErrMissingRequiredField(decision.Missing[0])
	}

	if raw, ok := uc.readSlot(ctx, sessionID, constvars.SlotAnalysisResult); ok {
		if stored, err := parseAnalysisResult(raw); err == nil {
			return stored, nil
		}
	}

	tag, ok := uc.readSlot(ctx, sessionID, constvars.SlotSelectedPatient)
	if !ok {
		return nil, exceptions.ErrMissingRequiredField(constvars.SlotSelectedPatient)
	}
	patient, _ := findDemoPatient(tag)

	findings := make([]models.Finding, len(patient.Findings))
	copy(findings, patient.Findings)
	result := &models.AnalysisResult{
		PatientType: patient.Tag,
		Score:       patient.Score,
		Findings:    findings,
		AnalyzedAt:  uc.now().UTC().Format(time.RFC3339),
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	if err := uc.SessionStore.Set(ctx, sessionID, map[string]string{constvars.SlotAnalysisResult: string(encoded)}); err != nil {
		uc.Log.Error("flowUsecase.Results error storing analysis result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("flowUsecase.Results analysis computed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.Tag),
		zap.Int(constvars.LoggingCountKey, len(findings)),
	)
	return result, nil
}

func (uc *flowUsecase) Detail(ctx context.Context, sessionID, category string) (*models.AreaDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.Detail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.FieldCategory, category),
	)

	request := &requests.CategorySelection{Category: category}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := uc.Results(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	detail := &models.AreaDetail{
		Area:     category,
		Findings: []models.Finding{},
	}
	total := 0
	for _, finding := range result.Findings {
		if finding.Area != category {
			continue
		}
		detail.Findings = append(detail.Findings, finding)
		total += finding.Score
	}
	if len(detail.Findings) > 0 {
		detail.Score = total / len(detail.Findings)
	}
	return detail, nil
}

func (uc *flowUsecase) Journey(ctx context.Context, sessionID string) ([]models.JourneyPhase, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.Journey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	raw, ok := uc.readSlot(ctx, sessionID, constvars.SlotUserAnswers)
	if !ok {
		return nil, exceptions.ErrMissingRequiredField(constvars.SlotUserAnswers)
	}
	answers, _ := parseAnswers(raw)

	areas := stringList(answers[answerKeyConcernAreas])
	if len(areas) == 0 {
		areas = utils.MapAreaNames(stringList(answers[constvars.AnswerKeyConcerns]))
	}
	if len(areas) == 0 {
		areas = []string{constvars.AreaOther}
	}

	phases := make([]models.JourneyPhase, 0, len(areas)+1)
	for _, area := range areas {
		treatment, ok := areaTreatments[area]
		if !ok {
			treatment = areaTreatments[constvars.AreaOther]
		}
		phases = append(phases, models.JourneyPhase{
			Order:      len(phases) + 1,
			Title:      treatment.Title,
			Areas:      []string{area},
			Treatments: treatment.Treatments,
			Weeks:      treatment.Weeks,
		})
	}
	phases = append(phases, models.JourneyPhase{
		Order:      len(phases) + 1,
		Title:      maintenancePhase.Title,
		Areas:      areas,
		Treatments: maintenancePhase.Treatments,
		Weeks:      maintenancePhase.Weeks,
	})
	return phases, nil
}

func (uc *flowUsecase) SetPreferences(ctx context.Context, sessionID string, request *requests.Preferences) (*models.Preferences, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("flowUsecase.SetPreferences called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slots := make(map[string]string, 2)
	if request.Theme != "" {
		slots[constvars.SlotTheme] = request.Theme
	}
	if request.HIPAAMode != nil {
		slots[constvars.SlotHIPAAMode] = strconv.FormatBool(*request.HIPAAMode)
	}
	if len(slots) > 0 {
		if err := uc.SessionStore.Set(ctx, sessionID, slots); err != nil {
			return nil, err
		}
	}

	preferences := &models.Preferences{Theme: constvars.ThemeLight}
	if theme, ok := uc.readSlot(ctx, sessionID, constvars.SlotTheme); ok {
		preferences.Theme = theme
	}
	if hipaaMode, ok := uc.readSlot(ctx, sessionID, constvars.SlotHIPAAMode); ok {
		preferences.HIPAAMode, _ = strconv.ParseBool(hipaaMode)
	}
	return preferences, nil
}

// checkPrerequisites computes the decision without logging the call. The
// category requirement only applies when the caller renders the step, since
// the category travels in the query and is never stored.
func (uc *flowUsecase) checkPrerequisites(ctx context.Context, sessionID, step string, query map[string]string, withQuery bool) models.StepDecision {
	if !isKnownStep(step) {
		return models.StepDecision{
			Step:       step,
			RedirectTo: constvars.StepPatientSelection,
		}
	}

	var missing []string
	for _, field := range stepRequirements[step] {
		if field == constvars.FieldCategory {
			if withQuery && !utils.IsAreaTag(strings.TrimSpace(query[field])) {
				missing = append(missing, field)
			}
			continue
		}
		if _, ok := uc.readSlot(ctx, sessionID, field); !ok {
			missing = append(missing, field)
		}
	}

	if len(missing) == 0 {
		return models.StepDecision{Step: step, Render: true}
	}
	return models.StepDecision{
		Step:       step,
		RedirectTo: earliestProducer(missing),
		Missing:    missing,
	}
}

// readSlot returns a slot value only when it is present and well formed.
// Corrupt values are cleared and reported as absent. Store failures are
// logged and reported as absent too.
func (uc *flowUsecase) readSlot(ctx context.Context, sessionID, slot string) (string, bool) {
	value, found, err := uc.SessionStore.Get(ctx, sessionID, slot)
	if err != nil {
		uc.Log.Error("flowUsecase.readSlot error reading session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotKey, slot),
			zap.Error(err),
		)
		return "", false
	}
	if !found {
		return "", false
	}

	if err := validateSlot(slot, value); err != nil {
		uc.Log.Warn("flowUsecase.readSlot corrupt session data",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotKey, slot),
			zap.Error(err),
		)
		uc.clearCorruptSlot(ctx, sessionID, slot)
		return "", false
	}
	return value, true
}

func (uc *flowUsecase) clearCorruptSlot(ctx context.Context, sessionID, slot string) {
	if err := uc.SessionStore.Delete(ctx, sessionID, slot); err != nil {
		uc.Log.Error("flowUsecase.clearCorruptSlot error deleting slot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotKey, slot),
			zap.Error(err),
		)
	}
}

func (uc *flowUsecase) selectPatient(ctx context.Context, sessionID string, payload *requests.AdvanceStep) error {
	request := &requests.PatientSelection{
		SelectedPatient: strings.TrimSpace(payload.SelectedPatient),
		UserPhoto:       payload.UserPhoto,
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if _, ok := findDemoPatient(request.SelectedPatient); !ok {
		return exceptions.ErrInvalidFieldValue(constvars.SlotSelectedPatient, "is not a known patient type")
	}

	if current, ok := uc.readSlot(ctx, sessionID, constvars.SlotSelectedPatient); ok && current != request.SelectedPatient {
		return exceptions.ErrInvalidFieldValue(constvars.SlotSelectedPatient, "cannot change until the session is reset")
	}

	return uc.SessionStore.Set(ctx, sessionID, map[string]string{
		constvars.SlotSelectedPatient: request.SelectedPatient,
		constvars.SlotUserPhoto:       request.UserPhoto,
	})
}

func (uc *flowUsecase) submitAnswers(ctx context.Context, sessionID string, answers map[string]interface{}) error {
	if _, ok := uc.readSlot(ctx, sessionID, constvars.SlotUserAnswers); ok {
		uc.Log.Info("flowUsecase.submitAnswers answers already complete",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
		return nil
	}

	if err := checkAnswers(answers); err != nil {
		return err
	}

	stored := make(map[string]interface{}, len(answers)+1)
	for key, value := range answers {
		stored[key] = value
	}
	stored[answerKeyConcernAreas] = utils.MapAreaNames(stringList(answers[constvars.AnswerKeyConcerns]))

	encoded, err := json.Marshal(stored)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.SessionStore.Set(ctx, sessionID, map[string]string{constvars.SlotUserAnswers: string(encoded)})
}

func validateSlot(slot, value string) error {
	switch slot {
	case constvars.SlotSelectedPatient:
		if _, ok := findDemoPatient(value); !ok {
			return fmt.Errorf("unknown patient type %q", value)
		}
	case constvars.SlotUserPhoto:
		if _, _, err := utils.ParseImageDataURI(value); err != nil {
			return err
		}
	case constvars.SlotUserAnswers:
		_, err := parseAnswers(value)
		return err
	case constvars.SlotAnalysisResult:
		_, err := parseAnalysisResult(value)
		return err
	}
	return nil
}

// parseAnalysisResult accepts only a stored result of a known patient type;
// null, empty objects and results of unknown types are corrupt.
func parseAnalysisResult(raw string) (*models.AnalysisResult, error) {
	var result *models.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%s is null", constvars.SlotAnalysisResult)
	}
	if _, ok := findDemoPatient(result.PatientType); !ok {
		return nil, fmt.Errorf("%s has unknown patient type %q", constvars.SlotAnalysisResult, result.PatientType)
	}
	if result.Findings == nil {
		result.Findings = []models.Finding{}
	}
	return result, nil
}

func parseAnswers(raw string) (map[string]interface{}, error) {
	var answers map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, err
	}
	if err := checkAnswers(answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func checkAnswers(answers map[string]interface{}) error {
	for _, key := range requiredAnswerKeys {
		if !isAnswered(answers[key]) {
			return exceptions.ErrMissingRequiredField(constvars.SlotUserAnswers + "." + key)
		}
	}
	return nil
}

func isAnswered(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []interface{}:
		return len(stringList(v)) > 0
	case []string:
		return len(stringList(v)) > 0
	default:
		return true
	}
}

// stringList reads a single answer or a multi-choice answer as a list of
// non-blank strings.
func stringList(value interface{}) []string {
	var list []string
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			list = append(list, v)
		}
	case []string:
		for _, item := range v {
			if strings.TrimSpace(item) != "" {
				list = append(list, item)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				list = append(list, s)
			}
		}
	}
	return list
}
