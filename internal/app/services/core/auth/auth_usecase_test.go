package auth

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, found := f.users[email]
	if !found {
		return nil, nil
	}
	return user, nil
}

type fakeSessionService struct {
	created []*models.Session
	deleted []string
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	f.created = append(f.created, session)
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
	f.deleted = append(f.deleted, sessionID)
	return nil
}

func newAuthFixture(t *testing.T) (*authUsecase, *fakeSessionService) {
	hash, err := utils.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	sessions := &fakeSessionService{}
	uc := &authUsecase{
		UserRepository: &fakeUserRepo{
			users: map[string]*models.User{
				"owner@example.com": {
					ID:        "user-1",
					Email:     "owner@example.com",
					Password:  hash,
					CompanyID: "company-1",
				},
			},
		},
		SessionService: sessions,
		InternalConfig: &config.InternalConfig{
			App: config.App{LoginSessionExpiredTimeInHours: 24},
			JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 24},
		},
		Log: zap.NewNop(),
	}
	return uc, sessions
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		uc, sessions := newAuthFixture(t)

		response, err := uc.LoginUser(ctx, &requests.Login{
			Email:    "owner@example.com",
			Password: "correct-horse-battery",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		require.Len(t, sessions.created, 1)
		assert.Equal(t, "company-1", sessions.created[0].CompanyID)

		sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, sessions.created[0].SessionID, sessionID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc, sessions := newAuthFixture(t)

		_, err := uc.LoginUser(ctx, &requests.Login{
			Email:    "owner@example.com",
			Password: "wrong-password-here",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
		assert.Empty(t, sessions.created)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		uc, _ := newAuthFixture(t)

		_, err := uc.LoginUser(ctx, &requests.Login{
			Email:    "ghost@example.com",
			Password: "correct-horse-battery",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newAuthFixture(t)

	sessionData, _ := json.Marshal(&models.Session{SessionID: "sess-42", CompanyID: "company-1"})

	err := uc.LogoutUser(ctx, string(sessionData))

	require.NoError(t, err)
	assert.Equal(t, []string{"sess-42"}, sessions.deleted)
}
