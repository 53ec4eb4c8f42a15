package settings

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

type SettingsController struct {
	Log             *zap.Logger
	SettingsUsecase SettingsUsecase
}

func NewSettingsController(logger *zap.Logger, settingsUsecase SettingsUsecase) *SettingsController {
	return &SettingsController{
		Log:             logger,
		SettingsUsecase: settingsUsecase,
	}
}

func (ctrl *SettingsController) sessionData(r *http.Request) (string, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return "", exceptions.ErrInvalidSession(errors.New("session data missing from request context"))
	}
	return sessionData, nil
}

func (ctrl *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SettingsUsecase.GetSettings(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettingsFetchedSuccess, response)
}

func (ctrl *SettingsController) ListFormSchemas(w http.ResponseWriter, r *http.Request) {
	schemas := ctrl.SettingsUsecase.ListFormSchemas(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FormSchemaSuccess, schemas)
}

func (ctrl *SettingsController) GetFormSchema(w http.ResponseWriter, r *http.Request) {
	tabKey := chi.URLParam(r, "tabKey")

	response, err := ctrl.SettingsUsecase.GetFormSchema(r.Context(), tabKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FormSchemaSuccess, response)
}

func (ctrl *SettingsController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	sessionData, err := ctrl.sessionData(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SaveSettings)
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

	response, err := ctrl.SettingsUsecase.SaveSettings(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettingsSavedSuccess, response)
}
