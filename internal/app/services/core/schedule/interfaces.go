package schedule

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type ScheduleUsecase interface {
	OpenEditor(ctx context.Context, sessionData string) (*responses.EditorState, error)
	GetEditorState(ctx context.Context, sessionData, editorID string) (*responses.EditorState, error)
	UpsertDay(ctx context.Context, sessionData, editorID string, request *requests.UpsertDay) (*responses.EditorState, error)
	ToggleDay(ctx context.Context, sessionData, editorID string, request *requests.ToggleDay) (*responses.EditorState, error)
	ApplyTemplate(ctx context.Context, sessionData, editorID string, request *requests.ApplyTemplate) (*responses.EditorState, error)
	ListTemplates(ctx context.Context) []Template
	RequestCopyToAllDays(ctx context.Context, sessionData, editorID string, request *requests.CopyToAllDays) (*responses.PendingConfirmation, error)
	RequestClearDay(ctx context.Context, sessionData, editorID string, request *requests.ClearDay) (*responses.PendingConfirmation, error)
	ResolveConfirmation(ctx context.Context, sessionData string, request *requests.ResolveConfirmation) (*responses.ConfirmationResult, error)
	SaveEditor(ctx context.Context, sessionData, editorID string) (*responses.CompanySchedule, error)
	DiscardEditor(ctx context.Context, sessionData, editorID string) error
	GetCompanySchedule(ctx context.Context, sessionData string) (*responses.CompanySchedule, error)
}

type ScheduleRepository interface {
	GetCompanySchedule(ctx context.Context, companyID string) (*models.CompanySchedule, error)
	ReplaceWorkingHours(ctx context.Context, companyID string, workingHours []models.DailyWorkingHour) error
}
