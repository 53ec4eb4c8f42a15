package schedule

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository ScheduleRepository
	RedisRepository    contracts.RedisRepository
	SessionService     contracts.SessionService
	EventPublisher     contracts.EventPublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	scheduleUsecaseInstance ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	scheduleRepository ScheduleRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			ScheduleRepository: scheduleRepository,
			RedisRepository:    redisRepository,
			SessionService:     sessionService,
			EventPublisher:     eventPublisher,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) OpenEditor(ctx context.Context, sessionData string) (*responses.EditorState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.OpenEditor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	persisted, err := uc.ScheduleRepository.GetCompanySchedule(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}

	draft := &EditorDraft{
		EditorID:  utils.GenerateSessionID(),
		CompanyID: session.CompanyID,
		Scope:     constvars.ScheduleScopeCompany,
		CreatedAt: time.Now(),
	}
	if persisted != nil {
		draft.WorkingHours = ReplaceAll(persisted.WorkingHours).Entries()
	}

	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.OpenEditor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, draft.EditorID),
	)
	return buildEditorState(draft, nil), nil
}

func (uc *scheduleUsecase) GetEditorState(ctx context.Context, sessionData, editorID string) (*responses.EditorState, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}
	return buildEditorState(draft, nil), nil
}

func (uc *scheduleUsecase) UpsertDay(ctx context.Context, sessionData, editorID string, request *requests.UpsertDay) (*responses.EditorState, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	patch := EntryPatch{StartTime: request.StartTime, EndTime: request.EndTime}
	draft.WorkingHours = draft.Collection().Upsert(request.DayOfWeek, patch).Entries()

	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}
	return buildEditorState(draft, nil), nil
}

func (uc *scheduleUsecase) ToggleDay(ctx context.Context, sessionData, editorID string, request *requests.ToggleDay) (*responses.EditorState, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	if request.Enabled {
		draft.WorkingHours = ToggleDayOn(draft.Collection(), request.DayOfWeek, draft.ParentCollection()).Entries()
	} else {
		draft.WorkingHours = ToggleDayOff(draft.Collection(), request.DayOfWeek).Entries()
	}

	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}
	return buildEditorState(draft, nil), nil
}

func (uc *scheduleUsecase) ApplyTemplate(ctx context.Context, sessionData, editorID string, request *requests.ApplyTemplate) (*responses.EditorState, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	template, found := TemplateByKey(request.TemplateKey)
	if !found {
		return nil, exceptions.ErrUnknownTemplate(fmt.Errorf("template %q not registered", request.TemplateKey))
	}

	draft.WorkingHours = ApplyTemplate(draft.Collection(), template).Entries()

	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}
	return buildEditorState(draft, nil), nil
}

func (uc *scheduleUsecase) ListTemplates(ctx context.Context) []Template {
	return Templates
}

func (uc *scheduleUsecase) RequestCopyToAllDays(ctx context.Context, sessionData, editorID string, request *requests.CopyToAllDays) (*responses.PendingConfirmation, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	source, found := draft.Collection().EntryFor(request.SourceDayOfWeek)
	if !found {
		return nil, exceptions.ErrScheduleCopySource(ErrSourceDayMissing, constvars.ErrClientDayNotConfigured)
	}
	if !source.IsComplete() {
		return nil, exceptions.ErrScheduleCopySource(ErrSourceDayIncomplete, constvars.ErrClientDayIncomplete)
	}
	if dayErr := ValidateDay(source, draft.ParentCollection()); dayErr != nil {
		return nil, exceptions.ErrScheduleCopySource(ErrSourceDayInvalid, constvars.ErrClientScheduleInvalid)
	}

	operation := &pendingOperation{
		Token:     utils.GenerateSessionID(),
		EditorID:  draft.EditorID,
		CompanyID: draft.CompanyID,
		Kind:      operationCopyToAllDays,
		DayOfWeek: request.SourceDayOfWeek,
	}
	if err := uc.storeOperation(ctx, operation); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Apply %s's working hours (%s-%s) to every day of the week?",
		DayName(request.SourceDayOfWeek), source.StartTime, source.EndTime)
	return &responses.PendingConfirmation{Token: operation.Token, Prompt: prompt}, nil
}

func (uc *scheduleUsecase) RequestClearDay(ctx context.Context, sessionData, editorID string, request *requests.ClearDay) (*responses.PendingConfirmation, error) {
	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	operation := &pendingOperation{
		Token:     utils.GenerateSessionID(),
		EditorID:  draft.EditorID,
		CompanyID: draft.CompanyID,
		Kind:      operationClearDay,
		DayOfWeek: request.DayOfWeek,
	}
	if err := uc.storeOperation(ctx, operation); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Remove the working hours for %s?", DayName(request.DayOfWeek))
	return &responses.PendingConfirmation{Token: operation.Token, Prompt: prompt}, nil
}

func (uc *scheduleUsecase) ResolveConfirmation(ctx context.Context, sessionData string, request *requests.ResolveConfirmation) (*responses.ConfirmationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	operationKey := fmt.Sprintf(constvars.RedisKeyPendingConfirmFormat, request.Token)
	raw, err := uc.RedisRepository.Get(ctx, operationKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrConfirmationNotFound(errors.New("token expired or already resolved"))
	}

	operation := new(pendingOperation)
	if err := json.Unmarshal([]byte(raw), operation); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if operation.CompanyID != session.CompanyID {
		return nil, exceptions.ErrEditorNotOwned(errors.New("confirmation token issued to another company"))
	}

	// Tokens are single use, whichever way the prompt is answered.
	if err := uc.RedisRepository.Delete(ctx, operationKey); err != nil {
		return nil, err
	}

	if !request.Accept {
		uc.Log.Info("scheduleUsecase.ResolveConfirmation declined",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEditorIDKey, operation.EditorID),
		)
		return &responses.ConfirmationResult{Applied: false}, nil
	}

	draft, err := uc.loadDraft(ctx, operation.EditorID, session.CompanyID)
	if err != nil {
		return nil, err
	}

	var outcome *responses.BulkOutcome
	switch operation.Kind {
	case operationCopyToAllDays:
		collection, copyOutcome, err := CopyToAllDays(draft.Collection(), operation.DayOfWeek, draft.ParentCollection())
		if err != nil {
			return nil, mapCopySourceError(err)
		}
		draft.WorkingHours = collection.Entries()
		outcome = &responses.BulkOutcome{AppliedDays: copyOutcome.AppliedDays}
		for _, skipped := range copyOutcome.Skipped {
			outcome.Skipped = append(outcome.Skipped, responses.SkippedDay{
				DayOfWeek: skipped.DayOfWeek,
				Reason:    skipped.Reason,
			})
		}
	case operationClearDay:
		draft.WorkingHours = draft.Collection().Remove(operation.DayOfWeek).Entries()
	default:
		return nil, exceptions.ErrConfirmationNotFound(fmt.Errorf("unknown operation kind %q", operation.Kind))
	}

	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &responses.ConfirmationResult{Applied: true, Editor: buildEditorState(draft, outcome)}, nil
}

func (uc *scheduleUsecase) SaveEditor(ctx context.Context, sessionData, editorID string) (*responses.CompanySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.SaveEditor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, editorID),
	)

	draft, err := uc.loadOwnedDraft(ctx, sessionData, editorID)
	if err != nil {
		return nil, err
	}

	collection := draft.Collection()
	if gateErr := CheckForSave(collection, draft.ParentCollection()); gateErr != nil {
		return nil, exceptions.ErrScheduleSaveGateRejected(gateErr)
	}

	err = uc.ScheduleRepository.ReplaceWorkingHours(ctx, draft.CompanyID, collection.Entries())
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"companyId":    draft.CompanyID,
		"scope":        draft.Scope,
		"workingHours": collection.Entries(),
		"occurredAt":   time.Now().UTC(),
	}
	err = uc.EventPublisher.Publish(ctx, constvars.RabbitMQScheduleUpdatedQueue, event)
	if err != nil {
		// The schedule is already persisted; a missed event must not undo the save.
		uc.Log.Warn("scheduleUsecase.SaveEditor event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	draftKey := fmt.Sprintf(constvars.RedisKeyScheduleDraftFormat, draft.EditorID)
	if err := uc.RedisRepository.Delete(ctx, draftKey); err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf(constvars.RedisKeyCompanyScheduleFormat, draft.CompanyID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		return nil, err
	}

	persisted, err := uc.ScheduleRepository.GetCompanySchedule(ctx, draft.CompanyID)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, exceptions.ErrCompanyNotFound(errors.New("company disappeared after save"))
	}

	uc.Log.Info("scheduleUsecase.SaveEditor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, editorID),
	)
	return buildScheduleResponse(persisted), nil
}

func (uc *scheduleUsecase) DiscardEditor(ctx context.Context, sessionData, editorID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	draftKey := fmt.Sprintf(constvars.RedisKeyScheduleDraftFormat, editorID)
	raw, err := uc.RedisRepository.Get(ctx, draftKey)
	if err != nil {
		return err
	}
	if raw == "" {
		// Already gone. Discard is idempotent.
		return nil
	}

	draft := new(EditorDraft)
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if draft.CompanyID != session.CompanyID {
		return exceptions.ErrEditorNotOwned(errors.New("editor draft opened by another company"))
	}

	return uc.RedisRepository.Delete(ctx, draftKey)
}

func (uc *scheduleUsecase) GetCompanySchedule(ctx context.Context, sessionData string) (*responses.CompanySchedule, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyCompanyScheduleFormat, session.CompanyID)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		persisted := new(models.CompanySchedule)
		if err := json.Unmarshal([]byte(cached), persisted); err == nil {
			return buildScheduleResponse(persisted), nil
		}
		// A corrupt cache entry falls through to the database read.
	}

	persisted, err := uc.ScheduleRepository.GetCompanySchedule(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		persisted = &models.CompanySchedule{}
	}

	cacheTTL := time.Duration(constvars.CompanyScheduleCacheTTLInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, cacheKey, persisted, cacheTTL); err != nil {
		return nil, err
	}

	return buildScheduleResponse(persisted), nil
}

func (uc *scheduleUsecase) loadOwnedDraft(ctx context.Context, sessionData, editorID string) (*EditorDraft, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.loadDraft(ctx, editorID, session.CompanyID)
}

func (uc *scheduleUsecase) loadDraft(ctx context.Context, editorID, companyID string) (*EditorDraft, error) {
	draftKey := fmt.Sprintf(constvars.RedisKeyScheduleDraftFormat, editorID)
	raw, err := uc.RedisRepository.Get(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrScheduleDraftNotFound(fmt.Errorf("editor %s has no draft", editorID))
	}

	draft := new(EditorDraft)
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if draft.CompanyID != companyID {
		return nil, exceptions.ErrEditorNotOwned(errors.New("editor draft opened by another company"))
	}
	return draft, nil
}

// storeDraft rewrites the draft and refreshes its expiry, so an editor stays
// alive as long as someone keeps editing it.
func (uc *scheduleUsecase) storeDraft(ctx context.Context, draft *EditorDraft) error {
	draftKey := fmt.Sprintf(constvars.RedisKeyScheduleDraftFormat, draft.EditorID)
	draftTTL := time.Duration(constvars.ScheduleDraftTTLInMinute) * time.Minute
	return uc.RedisRepository.Set(ctx, draftKey, draft, draftTTL)
}

func (uc *scheduleUsecase) storeOperation(ctx context.Context, operation *pendingOperation) error {
	operationKey := fmt.Sprintf(constvars.RedisKeyPendingConfirmFormat, operation.Token)
	operationTTL := time.Duration(constvars.PendingConfirmationTTLInMinute) * time.Minute
	return uc.RedisRepository.Set(ctx, operationKey, operation, operationTTL)
}

func mapCopySourceError(err error) error {
	switch {
	case errors.Is(err, ErrSourceDayMissing):
		return exceptions.ErrScheduleCopySource(err, constvars.ErrClientDayNotConfigured)
	case errors.Is(err, ErrSourceDayIncomplete):
		return exceptions.ErrScheduleCopySource(err, constvars.ErrClientDayIncomplete)
	case errors.Is(err, ErrSourceDayInvalid):
		return exceptions.ErrScheduleCopySource(err, constvars.ErrClientScheduleInvalid)
	default:
		return err
	}
}

func buildEditorState(draft *EditorDraft, outcome *responses.BulkOutcome) *responses.EditorState {
	collection := draft.Collection()
	state := &responses.EditorState{
		EditorID:       draft.EditorID,
		WorkingHours:   collection.Entries(),
		Errors:         []responses.DayValidationError{},
		ConfiguredDays: CountConfiguredDays(collection),
		Outcome:        outcome,
	}

	for _, entry := range collection {
		dayErr := ValidateDay(entry, draft.ParentCollection())
		if dayErr == nil {
			continue
		}
		state.Errors = append(state.Errors, responses.DayValidationError{
			DayOfWeek: dayErr.DayOfWeek,
			Kind:      string(dayErr.Kind),
			Message:   dayErr.Message(),
		})
	}

	for _, entry := range Summary(collection) {
		state.Summary = append(state.Summary, responses.ScheduleSummaryEntry{
			DayOfWeek:  entry.DayOfWeek,
			ShortLabel: entry.ShortLabel,
			Window:     entry.Window,
		})
	}
	return state
}

func buildScheduleResponse(persisted *models.CompanySchedule) *responses.CompanySchedule {
	collection := ReplaceAll(persisted.WorkingHours)
	response := &responses.CompanySchedule{
		ServiceInterval: persisted.ServiceInterval,
		WorkingHours:    collection.Entries(),
		ConfiguredDays:  CountConfiguredDays(collection),
	}
	for _, entry := range Summary(collection) {
		response.Summary = append(response.Summary, responses.ScheduleSummaryEntry{
			DayOfWeek:  entry.DayOfWeek,
			ShortLabel: entry.ShortLabel,
			Window:     entry.Window,
		})
	}
	return response
}
