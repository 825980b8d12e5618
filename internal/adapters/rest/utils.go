package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

// WriteJSONError отправляет ошибку в формате {"error": "..."}
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// writeUseCaseError - единственное место, где доменные ошибки превращаются в HTTP-статусы.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedWindow), errors.Is(err, domain.ErrInvalidListing):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrTokenInvalid):
		WriteJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotListingOwner):
		WriteJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrListingNotFound):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSearchSuperseded):
		WriteJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrFetchFailure):
		logger.Error("Listing storage is unavailable", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Listings are unavailable, no results")
	default:
		logger.Error("Unexpected use case error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
