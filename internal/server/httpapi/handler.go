package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Werffios/AntilleanController/internal/common"
	"github.com/Werffios/AntilleanController/internal/server/models"
)

type registerRequest struct {
	Name              string `json:"name"`
	EmailEncrypted    string `json:"email_encrypted"`
	PasswordEncrypted string `json:"password_encrypted"`
}

type loginRequest struct {
	EmailEncrypted    string `json:"email_encrypted"`
	PasswordEncrypted string `json:"password_encrypted"`
}

// userPayload is the wire representation of a principal. There is no
// password field at all, so the hash cannot leak by omission.
type userPayload struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userPayload `json:"user"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Info(r.Context(), "Registration request")

	result, err := s.users.Register(r.Context(), req.Name, req.EmailEncrypted, req.PasswordEncrypted)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, common.ErrDuplicateEmail.Error())
		case errors.Is(err, common.ErrInvalidEnvelope):
			writeError(w, http.StatusBadRequest, common.ErrInvalidEnvelope.Error())
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", result.User.ID)
	writeJSON(w, http.StatusCreated, authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        toUserPayload(result.User),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.users.Login(r.Context(), req.EmailEncrypted, req.PasswordEncrypted)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
		case errors.Is(err, common.ErrInvalidEnvelope):
			writeError(w, http.StatusBadRequest, common.ErrInvalidEnvelope.Error())
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        toUserPayload(result.User),
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		// Only reachable if the route table drops the guard.
		writeError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	writeJSON(w, http.StatusOK, toUserPayload(user))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
