package middlewares

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]string
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	data, found := f.sessions[sessionID]
	if !found {
		return "", exceptions.ErrInvalidSession(errors.New("session not found"))
	}
	return data, nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	const secret = "test-secret"

	m := &Middlewares{
		Log: zap.NewNop(),
		SessionService: &fakeSessionService{
			sessions: map[string]string{
				"sess-1": `{"sessionId":"sess-1","companyId":"company-1"}`,
			},
		},
		InternalConfig: &config.InternalConfig{
			JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 1},
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok, "session data should be in context")
		assert.Contains(t, sessionData, "company-1")
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/schedules", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/schedules", nil)
		rr := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/schedules", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token For Dead Session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-expired", secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/schedules", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
