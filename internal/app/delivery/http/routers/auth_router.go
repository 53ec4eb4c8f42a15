package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/auth"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, authController *auth.AuthController) {
	loginLimiter := middlewares.NewRateLimiter(m.InternalConfig.App.LoginMaxAttemptsPerMinute, time.Minute, 5*time.Minute)
	router.With(loginLimiter.Limit).Post("/login", authController.LoginUser)
	router.With(m.Authenticate).Post("/logout", authController.LogoutUser)
}
