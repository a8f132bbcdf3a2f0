package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/model"
)

// AuthService defines the signup, login and password reset flows.
type AuthService interface {
	StartSignUp(ctx context.Context, email, username, password string) (string, error)
	VerifySignUp(ctx context.Context, flowID, code string) (model.SessionResult, error)
	Login(ctx context.Context, email, password string) (model.SessionResult, error)
	StartPasswordReset(ctx context.Context, email string) (string, error)
	StartPasswordResetForUser(ctx context.Context, userID uuid.UUID, email string) (string, error)
	CompletePasswordReset(ctx context.Context, flowID, newPassword string) (uuid.UUID, error)
}

type signUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type flowStartedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type verifyRequest struct {
	OTP string `json:"otp"`
	ID  string `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
	Token   string    `json:"token"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetStartedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type resetVerifyRequest struct {
	ResetID     string `json:"resetId"`
	NewPassword string `json:"newPassword"`
}

type resetCompletedResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	base
	authService AuthService
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		base:        base{contextManager: contextManager, logger: logger},
		authService: authService,
	}
}

// SignUp starts a signup and mails the verification code.
// POST /signUp
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad signup request", err)
		return
	}

	id, err := h.authService.StartSignUp(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		h.fail(w, r, "Auth handler: signup start failed", err)
		return
	}

	writeJSON(w, http.StatusOK, flowStartedResponse{Message: "OTP sent to email", ID: id})
}

// Verify completes a signup with the mailed code.
// POST /verify
func (h *Auth) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad verify request", err)
		return
	}

	result, err := h.authService.VerifySignUp(r.Context(), req.ID, req.OTP)
	if err != nil {
		h.fail(w, r, "Auth handler: signup verification failed", err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Message: "SignUpSuccessLoginned",
		UserID:  result.UserID,
		Token:   result.Token,
	})
}

// Login signs in with email and password.
// POST /login
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad login request", err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, "Auth handler: login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Message: "LoginSuccess",
		UserID:  result.UserID,
		Token:   result.Token,
	})
}

// Logout is a no-op: tokens are held by the client.
// POST /logout
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "LogoutSuccess"})
}

// ForgotPassword mails a reset link to the given address.
// POST /forgotPass
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad forgot password request", err)
		return
	}

	if _, err := h.authService.StartPasswordReset(r.Context(), req.Email); err != nil {
		h.fail(w, r, "Auth handler: password reset start failed", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "ResetLinkSent"})
}

// ResetPassword mails a reset link to the signed-in user.
// POST /resetPassword
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req emailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad reset password request", err)
		return
	}

	id, err := h.authService.StartPasswordResetForUser(r.Context(), userID, req.Email)
	if err != nil {
		h.fail(w, r, "Auth handler: password reset start failed", err)
		return
	}

	writeJSON(w, http.StatusOK, resetStartedResponse{Success: true, ID: id})
}

// ResetPasswordVerify sets a new password for a pending reset.
// POST /resetPassVerify
func (h *Auth) ResetPasswordVerify(w http.ResponseWriter, r *http.Request) {
	var req resetVerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "Auth handler: bad reset verify request", err)
		return
	}

	userID, err := h.authService.CompletePasswordReset(r.Context(), req.ResetID, req.NewPassword)
	if err != nil {
		h.fail(w, r, "Auth handler: password reset failed", err)
		return
	}

	h.logger.Info("Auth handler: password reset completed",
		"user_id", userID)

	writeJSON(w, http.StatusOK, resetCompletedResponse{Message: "PasswordUpdated", UserID: userID})
}
