package schedule

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) sessionData(r *http.Request) (string, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return "", exceptions.ErrInvalidSession(errors.New("session data missing from request context"))
	}
	return sessionData, nil
}

func (ctrl *ScheduleController) GetCompanySchedule(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetCompanySchedule(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleFetchedSuccess, response)
}

func (ctrl *ScheduleController) OpenEditor(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.OpenEditor(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EditorOpenedSuccess, response)
}

func (ctrl *ScheduleController) GetEditorState(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetEditorState(ctx, sessionData, editorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleFetchedSuccess, response)
}

func (ctrl *ScheduleController) UpsertDay(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	request := new(requests.UpsertDay)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.UpsertDay(ctx, sessionData, editorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, response)
}

func (ctrl *ScheduleController) ToggleDay(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	request := new(requests.ToggleDay)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.ToggleDay(ctx, sessionData, editorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, response)
}

func (ctrl *ScheduleController) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	request := new(requests.ApplyTemplate)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.ApplyTemplate(ctx, sessionData, editorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, response)
}

func (ctrl *ScheduleController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := ctrl.ScheduleUsecase.ListTemplates(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleFetchedSuccess, templates)
}

func (ctrl *ScheduleController) RequestCopyToAllDays(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	request := new(requests.CopyToAllDays)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.RequestCopyToAllDays(ctx, sessionData, editorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ConfirmationNeeded, response)
}

func (ctrl *ScheduleController) RequestClearDay(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	request := new(requests.ClearDay)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.RequestClearDay(ctx, sessionData, editorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ConfirmationNeeded, response)
}

func (ctrl *ScheduleController) ResolveConfirmation(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ResolveConfirmation)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.ResolveConfirmation(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.ScheduleUpdatedSuccess
	if !response.Applied {
		message = constvars.ConfirmationDismissed
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *ScheduleController) SaveEditor(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.SaveEditor(ctx, sessionData, editorID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSavedSuccess, response)
}

func (ctrl *ScheduleController) DiscardEditor(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editorID := chi.URLParam(r, "editorID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ScheduleUsecase.DiscardEditor(ctx, sessionData, editorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditorDiscardedSuccess, nil)
}
