package handler

import (
	"errors"
	"net/http"

	"github.com/ernestofreyreg/law-api/internal/api/request"
	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/core"
)

// Auth handles signup, login, and the current-user profile.
type Auth struct {
	authSvc *core.AuthService
	userSvc *core.UserService
}

func NewAuth(authSvc *core.AuthService, userSvc *core.UserService) *Auth {
	return &Auth{authSvc: authSvc, userSvc: userSvc}
}

type authResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FirmName string `json:"firmName"`
	Token    string `json:"token"`
}

type profileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FirmName string `json:"firmName"`
}

// Signup registers a new firm user and returns their profile with a token.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.Signup
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	user, token, err := h.authSvc.Signup(r.Context(), req.Email, req.Password, req.FirmName)
	if err != nil {
		if errors.Is(err, core.ErrEmailTaken) {
			response.WriteError(w, http.StatusBadRequest, "User already exists")
			return
		}
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.WriteJSON(w, http.StatusCreated, authResponse{
		ID:       user.ID,
		Email:    user.Email,
		FirmName: user.FirmName,
		Token:    token,
	})
}

// Login authenticates with email and password.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req request.Login
	if err := request.Decode(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			response.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.WriteJSON(w, http.StatusOK, authResponse{
		ID:       user.ID,
		Email:    user.Email,
		FirmName: user.FirmName,
		Token:    token,
	})
}

// Me returns the authenticated user's profile.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	user, err := h.userSvc.GetByID(r.Context(), identity.ID)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, profileResponse{
		ID:       user.ID,
		Email:    user.Email,
		FirmName: user.FirmName,
	})
}
