package api

import (
	"github.com/Pjt727/classboard/api/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func populateSectionRoutes(r *chi.Router, h *handlers.Handler) {
	(*r).Get("/", h.GetSections)
	(*r).Route("/{sectionID}", func(r chi.Router) {
		r.Use(h.VerifySection)
		r.Get("/", h.GetSection)
		r.Post("/reset", h.ResetSection)

		r.Route("/courses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/", h.PostCourse)
			r.Put("/{courseID}", h.PutCourse)
			r.Delete("/{courseID}", h.DeleteCourse)
		})
	})
}
