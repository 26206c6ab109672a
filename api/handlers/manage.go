package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Pjt727/classboard/schedule"
	"github.com/go-chi/chi/v5"
)

const maxBody = 1 << 20

// decode reads a JSON body into v. An empty or null body leaves v untouched.
func decode(r *http.Request, v any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// decodeCourseDraft also holds credits to MinCredits..MaxCredits, a rule the
// stored records are never checked against.
func decodeCourseDraft(w http.ResponseWriter, r *http.Request) (schedule.CourseDraft, bool) {
	draft := schedule.NewCourseDraft()
	if err := decode(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid course body")
		return draft, false
	}
	if draft.Credits < schedule.MinCredits || draft.Credits > schedule.MaxCredits {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   fmt.Sprintf("credits must be between %d and %d", schedule.MinCredits, schedule.MaxCredits),
			Invalid: []schedule.Field{schedule.FieldCredits},
		})
		return draft, false
	}
	return draft, true
}

func decodeHolidayDraft(w http.ResponseWriter, r *http.Request) (schedule.HolidayDraft, bool) {
	draft := schedule.NewHolidayDraft()
	if err := decode(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday body")
		return draft, false
	}
	return draft, true
}

func (h *Handler) PostCourse(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeCourseDraft(w, r)
	if !ok {
		return
	}
	course, err := h.Planner.AddCourse(r.Context(), sectionFrom(r).ID, draft)
	if writeFailure(w, err) {
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

func (h *Handler) PutCourse(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeCourseDraft(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "courseID")
	course, found, err := h.Planner.UpdateCourse(r.Context(), sectionFrom(r).ID, id, draft)
	if writeFailure(w, err) {
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no course with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	err := h.Planner.DeleteCourse(r.Context(), sectionFrom(r).ID, chi.URLParam(r, "courseID"))
	if writeFailure(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResetSection(w http.ResponseWriter, r *http.Request) {
	section := sectionFrom(r)
	if writeFailure(w, h.Planner.Reset(r.Context(), section.ID)) {
		return
	}
	courses, _ := h.Planner.Courses(section.ID)
	writeJSON(w, http.StatusOK, courses)
}

func (h *Handler) PostHoliday(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeHolidayDraft(w, r)
	if !ok {
		return
	}
	holiday, err := h.Planner.AddHoliday(r.Context(), draft)
	if writeFailure(w, err) {
		return
	}
	writeJSON(w, http.StatusCreated, holiday)
}

func (h *Handler) PutHoliday(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeHolidayDraft(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "holidayID")
	holiday, found, err := h.Planner.UpdateHoliday(r.Context(), id, draft)
	if writeFailure(w, err) {
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no holiday with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if writeFailure(w, h.Planner.DeleteHoliday(r.Context(), chi.URLParam(r, "holidayID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
