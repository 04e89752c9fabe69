package controllers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/services"
	"griddle/app/storage"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a service error onto an HTTP status and JSON body.
func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateVote),
		errors.Is(err, repositories.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, storage.ErrUpload), errors.Is(err, storage.ErrDelete):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// clientIdentity derives the voter identity from the request's network
// address. Behind a proxy the first X-Forwarded-For entry wins.
func clientIdentity(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
