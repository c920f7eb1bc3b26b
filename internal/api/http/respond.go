package http

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/gorilla/mux"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Message string                  `json:"message"`
	Fields  []domain.FieldViolation `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindInvalid:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		// Uniqueness clashes answer 409; state-invariant violations answer 422.
		if errors.Is(err, domain.ErrCPFTaken) || errors.Is(err, domain.ErrGameNameTaken) {
			status = http.StatusConflict
		} else {
			status = http.StatusUnprocessableEntity
		}
	}
	writeJSON(w, status, errorResponse{Message: de.Message, Fields: de.Fields})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.Invalid("id must be an integer",
			domain.FieldViolation{Field: "id", Reason: "must be an integer"})
	}
	return id, nil
}
