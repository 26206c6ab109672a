package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Pjt727/classboard/data/persist"
	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	log "github.com/sirupsen/logrus"
)

// PersistedHeader is "false" on responses whose change only lives in memory
const PersistedHeader = "X-Classboard-Persisted"

type errorBody struct {
	Error   string           `json:"error"`
	Missing []schedule.Field `json:"missing,omitempty"`
	Invalid []schedule.Field `json:"invalid,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error("Could not marshal response: ", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeFailure maps an error from the planner to a response. It reports
// false when err was only a persistence failure, in which case the caller
// still answers with the mutated record.
func writeFailure(w http.ResponseWriter, err error) bool {
	var verr *schedule.ValidationError
	switch {
	case err == nil:
		return false
	case errors.Is(err, persist.ErrNotPersisted):
		log.Warn("Change kept in memory only: ", err)
		w.Header().Set(PersistedHeader, "false")
		return false
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   schedule.ErrValidation.Error(),
			Missing: verr.Missing,
			Invalid: verr.Invalid,
		})
	case errors.Is(err, planner.ErrUnknownSection), errors.Is(err, planner.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Error("Request failed: ", err)
		writeError(w, http.StatusInternalServerError, http.StatusText(500))
	}
	return true
}
