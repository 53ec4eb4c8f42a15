package routers

import (
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/services/core/schedule"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *schedule.ScheduleController) {
	router.Use(m.Authenticate)

	router.Get("/", c.GetCompanySchedule)
	router.Get("/templates", c.ListTemplates)

	router.Post("/editor", c.OpenEditor)
	router.Route("/editor/{editorID}", func(r chi.Router) {
		r.Get("/", c.GetEditorState)
		r.Delete("/", c.DiscardEditor)
		r.Patch("/days", c.UpsertDay)
		r.Post("/days/toggle", c.ToggleDay)
		r.Post("/template", c.ApplyTemplate)
		r.Post("/copy-to-all-days", c.RequestCopyToAllDays)
		r.Post("/clear-day", c.RequestClearDay)
		r.Post("/save", c.SaveEditor)
	})

	router.Post("/confirmations", c.ResolveConfirmation)
}
