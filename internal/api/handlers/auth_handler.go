package handlers

import (
	"net/http"

	"github.com/uptraa/platform/internal/services"
	"github.com/uptraa/platform/internal/validation"
)

// ForgotPasswordMessage is returned whether or not the email is registered.
const ForgotPasswordMessage = "If an account with that email exists, a password reset link has been sent"

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register accepts JSON or multipart. Jobseekers attach their resume as "file".
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in validation.RegisterInput
	if err := validation.Bind(payload, &in, validation.Open); err != nil {
		respondError(w, r, err)
		return
	}
	resume, err := formFile(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, token, err := h.svc.Register(r.Context(), in, resume)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "User registered successfully", map[string]any{"user": user, "token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in validation.LoginInput
	if err := validation.Bind(payload, &in, validation.Open); err != nil {
		respondError(w, r, err)
		return
	}

	user, token, err := h.svc.Login(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Login successful", map[string]any{"user": user, "token": token})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in validation.ForgotPasswordInput
	if err := validation.Bind(payload, &in, validation.Open); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), in); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, ForgotPasswordMessage, nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in validation.ResetPasswordInput
	if err := validation.Bind(payload, &in, validation.Open); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.svc.ResetPassword(r.Context(), in); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Password reset successfully", nil)
}
