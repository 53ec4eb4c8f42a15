package schedule

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedis struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

type fakeSessionService struct{}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, err
	}
	return session, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeScheduleRepo struct {
	mu        sync.Mutex
	schedules map[string]*models.CompanySchedule
	replaced  int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*models.CompanySchedule)}
}

func (f *fakeScheduleRepo) GetCompanySchedule(ctx context.Context, companyID string) (*models.CompanySchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	persisted, found := f.schedules[companyID]
	if !found {
		return nil, nil
	}
	clone := *persisted
	return &clone, nil
}

func (f *fakeScheduleRepo) ReplaceWorkingHours(ctx context.Context, companyID string, workingHours []models.DailyWorkingHour) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	persisted, found := f.schedules[companyID]
	if !found {
		persisted = &models.CompanySchedule{}
		f.schedules[companyID] = persisted
	}
	persisted.WorkingHours = workingHours
	f.replaced++
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) Publish(ctx context.Context, queue string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, queue)
	return nil
}

type usecaseFixture struct {
	uc        *scheduleUsecase
	redis     *fakeRedis
	repo      *fakeScheduleRepo
	publisher *fakePublisher
}

func newUsecaseFixture() *usecaseFixture {
	redis := newFakeRedis()
	repo := newFakeScheduleRepo()
	publisher := &fakePublisher{}
	uc := &scheduleUsecase{
		ScheduleRepository: repo,
		RedisRepository:    redis,
		SessionService:     &fakeSessionService{},
		EventPublisher:     publisher,
		InternalConfig:     &config.InternalConfig{},
		Log:                zap.NewNop(),
	}
	return &usecaseFixture{uc: uc, redis: redis, repo: repo, publisher: publisher}
}

func sessionDataFor(companyID string) string {
	data, _ := json.Marshal(&models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		CompanyID: companyID,
		Email:     "owner@example.com",
	})
	return string(data)
}

func TestOpenEditor(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Company Starts With No Days", func(t *testing.T) {
		fx := newUsecaseFixture()
		state, err := fx.uc.OpenEditor(ctx, sessionDataFor("company-1"))

		require.NoError(t, err)
		assert.NotEmpty(t, state.EditorID)
		assert.Empty(t, state.WorkingHours)
		assert.Empty(t, state.Errors)
		assert.Equal(t, 0, state.ConfiguredDays)
	})

	t.Run("Seeds Draft From Persisted Schedule", func(t *testing.T) {
		fx := newUsecaseFixture()
		fx.repo.schedules["company-1"] = &models.CompanySchedule{
			WorkingHours: []models.DailyWorkingHour{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
			},
		}

		state, err := fx.uc.OpenEditor(ctx, sessionDataFor("company-1"))

		require.NoError(t, err)
		require.Len(t, state.WorkingHours, 1)
		assert.Equal(t, 1, state.ConfiguredDays)
	})
}

func TestEditorMutations(t *testing.T) {
	ctx := context.Background()
	sessionData := sessionDataFor("company-1")

	t.Run("Toggle Day On Uses Fallback Default", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		state, err := fx.uc.ToggleDay(ctx, sessionData, opened.EditorID, &requests.ToggleDay{DayOfWeek: 1, Enabled: true})

		require.NoError(t, err)
		require.Len(t, state.WorkingHours, 1)
		assert.Equal(t, models.DailyWorkingHour{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"}, state.WorkingHours[0])
		assert.Empty(t, state.Errors)
	})

	t.Run("Partial Day Reports Missing End", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		state, err := fx.uc.UpsertDay(ctx, sessionData, opened.EditorID, &requests.UpsertDay{
			DayOfWeek: 2, StartTime: strPtr("10:00"),
		})

		require.NoError(t, err)
		require.Len(t, state.Errors, 1)
		assert.Equal(t, string(ErrorMissingEnd), state.Errors[0].Kind)
		assert.Equal(t, 2, state.Errors[0].DayOfWeek)
	})

	t.Run("Toggle Off Removes The Record", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		_, err = fx.uc.ToggleDay(ctx, sessionData, opened.EditorID, &requests.ToggleDay{DayOfWeek: 4, Enabled: true})
		require.NoError(t, err)

		state, err := fx.uc.ToggleDay(ctx, sessionData, opened.EditorID, &requests.ToggleDay{DayOfWeek: 4, Enabled: false})
		require.NoError(t, err)
		assert.Empty(t, state.WorkingHours)
	})

	t.Run("Apply Template", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		state, err := fx.uc.ApplyTemplate(ctx, sessionData, opened.EditorID, &requests.ApplyTemplate{TemplateKey: "mon-fri-8-17"})

		require.NoError(t, err)
		assert.Equal(t, 5, state.ConfiguredDays)
		assert.Len(t, state.Summary, 5)
	})

	t.Run("Unknown Template", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		_, err = fx.uc.ApplyTemplate(ctx, sessionData, opened.EditorID, &requests.ApplyTemplate{TemplateKey: "nope"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Expired Editor", func(t *testing.T) {
		fx := newUsecaseFixture()
		_, err := fx.uc.UpsertDay(ctx, sessionData, "gone", &requests.UpsertDay{DayOfWeek: 1})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 410, customErr.StatusCode)
	})

	t.Run("Draft Belongs To Another Company", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)

		_, err = fx.uc.GetEditorState(ctx, sessionDataFor("company-2"), opened.EditorID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})
}

func TestConfirmationFlow(t *testing.T) {
	ctx := context.Background()
	sessionData := sessionDataFor("company-1")

	openWithMonday := func(t *testing.T, fx *usecaseFixture) string {
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)
		_, err = fx.uc.UpsertDay(ctx, sessionData, opened.EditorID, &requests.UpsertDay{
			DayOfWeek: 1, StartTime: strPtr("08:00"), EndTime: strPtr("17:00"),
		})
		require.NoError(t, err)
		return opened.EditorID
	}

	t.Run("Copy Accepted Applies To Whole Week", func(t *testing.T) {
		fx := newUsecaseFixture()
		editorID := openWithMonday(t, fx)

		pending, err := fx.uc.RequestCopyToAllDays(ctx, sessionData, editorID, &requests.CopyToAllDays{SourceDayOfWeek: 1})
		require.NoError(t, err)
		assert.Contains(t, pending.Prompt, "Monday")

		result, err := fx.uc.ResolveConfirmation(ctx, sessionData, &requests.ResolveConfirmation{Token: pending.Token, Accept: true})
		require.NoError(t, err)
		assert.True(t, result.Applied)
		require.NotNil(t, result.Editor)
		assert.Len(t, result.Editor.WorkingHours, 7)
		assert.Empty(t, result.Editor.Errors)
		require.NotNil(t, result.Editor.Outcome)
		assert.Len(t, result.Editor.Outcome.AppliedDays, 7)
	})

	t.Run("Decline Leaves Draft Untouched", func(t *testing.T) {
		fx := newUsecaseFixture()
		editorID := openWithMonday(t, fx)

		pending, err := fx.uc.RequestCopyToAllDays(ctx, sessionData, editorID, &requests.CopyToAllDays{SourceDayOfWeek: 1})
		require.NoError(t, err)

		result, err := fx.uc.ResolveConfirmation(ctx, sessionData, &requests.ResolveConfirmation{Token: pending.Token, Accept: false})
		require.NoError(t, err)
		assert.False(t, result.Applied)
		assert.Nil(t, result.Editor)

		state, err := fx.uc.GetEditorState(ctx, sessionData, editorID)
		require.NoError(t, err)
		assert.Len(t, state.WorkingHours, 1)
	})

	t.Run("Token Is Single Use", func(t *testing.T) {
		fx := newUsecaseFixture()
		editorID := openWithMonday(t, fx)

		pending, err := fx.uc.RequestCopyToAllDays(ctx, sessionData, editorID, &requests.CopyToAllDays{SourceDayOfWeek: 1})
		require.NoError(t, err)

		_, err = fx.uc.ResolveConfirmation(ctx, sessionData, &requests.ResolveConfirmation{Token: pending.Token, Accept: false})
		require.NoError(t, err)

		_, err = fx.uc.ResolveConfirmation(ctx, sessionData, &requests.ResolveConfirmation{Token: pending.Token, Accept: true})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 410, customErr.StatusCode)
	})

	t.Run("Copy From Incomplete Source Rejected Upfront", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)
		_, err = fx.uc.UpsertDay(ctx, sessionData, opened.EditorID, &requests.UpsertDay{
			DayOfWeek: 1, StartTime: strPtr("08:00"),
		})
		require.NoError(t, err)

		_, err = fx.uc.RequestCopyToAllDays(ctx, sessionData, opened.EditorID, &requests.CopyToAllDays{SourceDayOfWeek: 1})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("Clear Day Accepted Removes Entry", func(t *testing.T) {
		fx := newUsecaseFixture()
		editorID := openWithMonday(t, fx)

		pending, err := fx.uc.RequestClearDay(ctx, sessionData, editorID, &requests.ClearDay{DayOfWeek: 1})
		require.NoError(t, err)

		result, err := fx.uc.ResolveConfirmation(ctx, sessionData, &requests.ResolveConfirmation{Token: pending.Token, Accept: true})
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Empty(t, result.Editor.WorkingHours)
	})
}

func TestSaveEditor(t *testing.T) {
	ctx := context.Background()
	sessionData := sessionDataFor("company-1")

	t.Run("Gate Rejects Offending Days", func(t *testing.T) {
		fx := newUsecaseFixture()
		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)
		_, err = fx.uc.UpsertDay(ctx, sessionData, opened.EditorID, &requests.UpsertDay{
			DayOfWeek: 3, StartTime: strPtr("17:00"), EndTime: strPtr("09:00"),
		})
		require.NoError(t, err)

		_, err = fx.uc.SaveEditor(ctx, sessionData, opened.EditorID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
		assert.Equal(t, 0, fx.repo.replaced, "nothing persists when the gate rejects")

		// the draft survives a rejected save
		_, err = fx.uc.GetEditorState(ctx, sessionData, opened.EditorID)
		assert.NoError(t, err)
	})

	t.Run("Successful Save Persists And Publishes", func(t *testing.T) {
		fx := newUsecaseFixture()
		fx.repo.schedules["company-1"] = &models.CompanySchedule{ServiceInterval: 30}

		opened, err := fx.uc.OpenEditor(ctx, sessionData)
		require.NoError(t, err)
		_, err = fx.uc.ToggleDay(ctx, sessionData, opened.EditorID, &requests.ToggleDay{DayOfWeek: 1, Enabled: true})
		require.NoError(t, err)

		saved, err := fx.uc.SaveEditor(ctx, sessionData, opened.EditorID)

		require.NoError(t, err)
		assert.Equal(t, 30, saved.ServiceInterval)
		assert.Equal(t, 1, saved.ConfiguredDays)
		assert.Equal(t, 1, fx.repo.replaced)
		assert.Equal(t, []string{"schedule.updated"}, fx.publisher.events)

		// draft consumed: saving twice needs a fresh editor
		_, err = fx.uc.SaveEditor(ctx, sessionData, opened.EditorID)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 410, customErr.StatusCode)
	})
}

func TestDiscardEditor(t *testing.T) {
	ctx := context.Background()
	sessionData := sessionDataFor("company-1")
	fx := newUsecaseFixture()

	opened, err := fx.uc.OpenEditor(ctx, sessionData)
	require.NoError(t, err)

	require.NoError(t, fx.uc.DiscardEditor(ctx, sessionData, opened.EditorID))
	require.NoError(t, fx.uc.DiscardEditor(ctx, sessionData, opened.EditorID), "discard is idempotent")

	_, err = fx.uc.GetEditorState(ctx, sessionData, opened.EditorID)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 410, customErr.StatusCode)
}

func TestGetCompanySchedule(t *testing.T) {
	ctx := context.Background()
	sessionData := sessionDataFor("company-1")

	t.Run("Unconfigured Company Reads Empty", func(t *testing.T) {
		fx := newUsecaseFixture()
		response, err := fx.uc.GetCompanySchedule(ctx, sessionData)

		require.NoError(t, err)
		assert.Empty(t, response.WorkingHours)
		assert.Equal(t, 0, response.ConfiguredDays)
	})

	t.Run("Populates Read Through Cache", func(t *testing.T) {
		fx := newUsecaseFixture()
		fx.repo.schedules["company-1"] = &models.CompanySchedule{
			ServiceInterval: 45,
			WorkingHours: []models.DailyWorkingHour{
				{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
			},
		}

		response, err := fx.uc.GetCompanySchedule(ctx, sessionData)
		require.NoError(t, err)
		assert.Equal(t, 45, response.ServiceInterval)

		cached, err := fx.redis.Get(ctx, "company_schedule:company-1")
		require.NoError(t, err)
		assert.NotEmpty(t, cached)
	})
}
