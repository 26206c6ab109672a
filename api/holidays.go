package api

import (
	"github.com/Pjt727/classboard/api/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func populateHolidayRoutes(r *chi.Router, h *handlers.Handler) {
	(*r).Get("/", h.GetHolidays)
	(*r).Get("/export.ics", h.ExportHolidays)
	(*r).With(middleware.AllowContentType("text/calendar", "text/plain")).
		Post("/import", h.ImportHolidays)

	(*r).Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.PostHoliday)
		r.Put("/{holidayID}", h.PutHoliday)
		r.Delete("/{holidayID}", h.DeleteHoliday)
	})
}
