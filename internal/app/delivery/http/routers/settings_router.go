package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/settings"

	"github.com/go-chi/chi/v5"
)

func attachSettingsRoutes(router chi.Router, m *middlewares.Middlewares, c *settings.SettingsController) {
	router.Use(m.Authenticate)

	router.Get("/", c.GetSettings)
	router.Post("/", c.SaveSettings)
	router.Get("/forms", c.ListFormSchemas)
	router.Get("/forms/{tabKey}", c.GetFormSchema)
}
