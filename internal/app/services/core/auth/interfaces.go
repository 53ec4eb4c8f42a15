package auth

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
