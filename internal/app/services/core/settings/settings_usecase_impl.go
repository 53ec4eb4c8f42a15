package settings

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/schedule"
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

	"go.uber.org/zap"
)

var allowedLogoFormats = []string{".png", ".jpg", ".jpeg"}

type settingsUsecase struct {
	CompanyRepository CompanyRepository
	RedisRepository   contracts.RedisRepository
	SessionService    contracts.SessionService
	EventPublisher    contracts.EventPublisher
	MinioStorage      contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	settingsUsecaseInstance SettingsUsecase
	onceSettingsUsecase     sync.Once
)

func NewSettingsUsecase(
	companyRepository CompanyRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) SettingsUsecase {
	onceSettingsUsecase.Do(func() {
		settingsUsecaseInstance = &settingsUsecase{
			CompanyRepository: companyRepository,
			RedisRepository:   redisRepository,
			SessionService:    sessionService,
			EventPublisher:    eventPublisher,
			MinioStorage:      minioStorage,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return settingsUsecaseInstance
}

func (uc *settingsUsecase) GetSettings(ctx context.Context, sessionData string) (*responses.Settings, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	company, err := uc.CompanyRepository.FindByID(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, exceptions.ErrCompanyNotFound(errors.New("no company for session"))
	}

	return &responses.Settings{
		Name:        company.Name,
		Phone:       company.Phone,
		Description: company.Description,
		LogoURL:     company.LogoURL,
		Schedule:    buildScheduleView(&company.Schedule),
	}, nil
}

func (uc *settingsUsecase) ListFormSchemas(ctx context.Context) []responses.FormSchema {
	out := make([]responses.FormSchema, 0, len(tabOrder))
	for _, tabKey := range tabOrder {
		out = append(out, formSchemas[tabKey])
	}
	return out
}

func (uc *settingsUsecase) GetFormSchema(ctx context.Context, tabKey string) (*responses.FormSchema, error) {
	schema, found := formSchemas[tabKey]
	if !found {
		return nil, exceptions.ErrUnknownSettingsTab(fmt.Errorf("tab %q not registered", tabKey))
	}
	return &schema, nil
}

// SaveSettings commits whichever tabs the payload carries. Tabs it does not
// carry are untouched; the working-hours tab still passes the same save gate
// the schedule editor uses.
func (uc *settingsUsecase) SaveSettings(ctx context.Context, sessionData string, request *requests.SaveSettings) (*responses.SaveSettingsResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.SaveSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if request.WorkingHours == nil && request.CompanyProfile == nil {
		return nil, exceptions.ErrSettingsNothingToSave(errors.New("empty save payload"))
	}

	result := &responses.SaveSettingsResult{}

	if request.WorkingHours != nil {
		err = uc.saveWorkingHoursTab(ctx, session.CompanyID, request.WorkingHours)
		if err != nil {
			return nil, err
		}
		result.SavedTabs = append(result.SavedTabs, constvars.SettingsTabWorkingHours)
	}

	if request.CompanyProfile != nil {
		logoURL, err := uc.saveCompanyProfileTab(ctx, session.CompanyID, request.CompanyProfile)
		if err != nil {
			return nil, err
		}
		result.SavedTabs = append(result.SavedTabs, constvars.SettingsTabCompanyProfile)
		result.LogoURL = logoURL
	}

	uc.Log.Info("settingsUsecase.SaveSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompanyIDKey, session.CompanyID),
	)
	return result, nil
}

func (uc *settingsUsecase) saveWorkingHoursTab(ctx context.Context, companyID string, tab *requests.WorkingHoursTab) error {
	collection := schedule.ReplaceAll(tab.WorkingHours)
	if gateErr := schedule.CheckForSave(collection, nil); gateErr != nil {
		return exceptions.ErrScheduleSaveGateRejected(gateErr)
	}

	persisted := &models.CompanySchedule{
		ServiceInterval: tab.ServiceInterval,
		WorkingHours:    collection.Entries(),
	}
	if err := uc.CompanyRepository.UpdateSchedule(ctx, companyID, persisted); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyCompanyScheduleFormat, companyID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		return err
	}

	event := map[string]interface{}{
		"companyId":    companyID,
		"scope":        constvars.ScheduleScopeCompany,
		"workingHours": persisted.WorkingHours,
		"occurredAt":   time.Now().UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.RabbitMQScheduleUpdatedQueue, event); err != nil {
		uc.Log.Warn("settingsUsecase.saveWorkingHoursTab event publish failed", zap.Error(err))
	}
	return nil
}

func (uc *settingsUsecase) saveCompanyProfileTab(ctx context.Context, companyID string, tab *requests.CompanyProfileTab) (string, error) {
	logoURL := ""
	if tab.Logo != "" {
		data, ext, err := utils.DecodeBase64Image(tab.Logo)
		if err != nil {
			return "", exceptions.ErrImageValidation(err)
		}
		if err := utils.ValidateImageFormat(ext, allowedLogoFormats); err != nil {
			return "", exceptions.ErrImageValidation(err)
		}
		if err := utils.ValidateImageSize(data, int64(uc.InternalConfig.Minio.LogoMaxUploadSizeInMB)); err != nil {
			return "", exceptions.ErrImageValidation(err)
		}

		objectName := utils.GenerateFileName("logo", companyID, ext)
		logoURL, err = uc.MinioStorage.UploadObject(ctx, objectName, data)
		if err != nil {
			return "", err
		}
	}

	err := uc.CompanyRepository.UpdateProfile(ctx, companyID, tab.Name, tab.Phone, tab.Description, logoURL)
	if err != nil {
		return "", err
	}
	return logoURL, nil
}

func buildScheduleView(persisted *models.CompanySchedule) *responses.CompanySchedule {
	collection := schedule.ReplaceAll(persisted.WorkingHours)
	view := &responses.CompanySchedule{
		ServiceInterval: persisted.ServiceInterval,
		WorkingHours:    collection.Entries(),
		ConfiguredDays:  schedule.CountConfiguredDays(collection),
	}
	for _, entry := range schedule.Summary(collection) {
		view.Summary = append(view.Summary, responses.ScheduleSummaryEntry{
			DayOfWeek:  entry.DayOfWeek,
			ShortLabel: entry.ShortLabel,
			Window:     entry.Window,
		})
	}
	return view
}
