package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sulavmhrzn/BlogIt-API/app/repositories"
	"github.com/sulavmhrzn/BlogIt-API/app/services"
)

// sendJSON writes a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes a JSON error body with the given status code.
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service-layer errors onto HTTP statuses:
// validation 400, forbidden 403, not found 404, anything else 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verr.Fields})
	case errors.Is(err, services.ErrForbidden):
		sendError(w, "you do not have permission to perform this action", http.StatusForbidden)
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "not found", http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}
