package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Pjt727/classboard/data/persist"
	"github.com/Pjt727/classboard/schedule"
)

func (h *Handler) ExportHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="holidays.ics"`)
	io.WriteString(w, h.Planner.ExportHolidays(h.Now()))
}

type importResult struct {
	Added []schedule.Holiday `json:"added"`
}

func (h *Handler) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	added, err := h.Planner.ImportHolidays(r.Context(), io.LimitReader(r.Body, maxBody))
	if err != nil && !errors.Is(err, persist.ErrNotPersisted) {
		writeError(w, http.StatusBadRequest, "Invalid calendar body")
		return
	}
	writeFailure(w, err)
	if added == nil {
		added = []schedule.Holiday{}
	}
	writeJSON(w, http.StatusOK, importResult{Added: added})
}
