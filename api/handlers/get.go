package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	"github.com/go-chi/chi/v5"
)

type contextKey int

const sectionKey contextKey = iota

// Handler serves the planner over JSON. Now is read for every date
// dependent response.
type Handler struct {
	Planner *planner.Planner
	Now     func() time.Time
}

func New(p *planner.Planner) *Handler {
	return &Handler{Planner: p, Now: time.Now}
}

func (h *Handler) VerifySection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		section, err := h.Planner.Section(chi.URLParam(r, "sectionID"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), sectionKey, section)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sectionFrom(r *http.Request) schedule.Section {
	return r.Context().Value(sectionKey).(schedule.Section)
}

type sectionListing struct {
	schedule.Section
	Stats schedule.CourseStats `json:"stats"`
}

func (h *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	dashboard := h.Planner.Dashboard(h.Now())
	out := make([]sectionListing, 0, len(dashboard.Sections))
	for _, s := range dashboard.Sections {
		out = append(out, sectionListing{Section: s.Section, Stats: s.Stats})
	}
	writeJSON(w, http.StatusOK, out)
}

type courseViewResponse struct {
	Mode schedule.ViewMode `json:"mode"`
	planner.CourseView
}

func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode, ok := schedule.ParseViewMode(query.Get("view"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query view param")
		return
	}
	day := strings.TrimSpace(query.Get("day"))
	if day != "" && day != schedule.AllDays && !schedule.IsWeekday(day) {
		writeError(w, http.StatusBadRequest, "Invalid query day param")
		return
	}

	view, err := h.Planner.CourseView(sectionFrom(r).ID, schedule.CourseFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Day:    day,
	})
	if writeFailure(w, err) {
		return
	}
	if mode == schedule.ViewTable {
		view.Weekly = nil
	}
	writeJSON(w, http.StatusOK, courseViewResponse{Mode: mode, CourseView: view})
}

func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	kind := strings.ToLower(strings.TrimSpace(query.Get("type")))
	if kind != "" && kind != schedule.AllTypes {
		if _, ok := schedule.ParseHolidayType(kind); !ok {
			writeError(w, http.StatusBadRequest, "Invalid query type param")
			return
		}
	}
	view := h.Planner.HolidayView(schedule.HolidayFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Type:   kind,
	}, h.Now())
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.Dashboard(h.Now()))
}
