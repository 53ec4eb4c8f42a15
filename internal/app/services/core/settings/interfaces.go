package settings

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context, sessionData string) (*responses.Settings, error)
	ListFormSchemas(ctx context.Context) []responses.FormSchema
	GetFormSchema(ctx context.Context, tabKey string) (*responses.FormSchema, error)
	SaveSettings(ctx context.Context, sessionData string, request *requests.SaveSettings) (*responses.SaveSettingsResult, error)
}

type CompanyRepository interface {
	FindByID(ctx context.Context, companyID string) (*models.Company, error)
	UpdateProfile(ctx context.Context, companyID, name, phone, description, logoURL string) error
	UpdateSchedule(ctx context.Context, companyID string, schedule *models.CompanySchedule) error
}
