package controllers

import (
	"encoding/json"
	"net/http"

	"griddle/app/services"
)

// AuthController handles admin registration and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/admin/register
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := ac.authService.Register(req.Username, req.Password); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

// Login handles POST /api/admin/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
