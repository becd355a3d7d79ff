package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

const (
	signupMessage = "Account created. Check your email to verify your address."
	verifyMessage = "Email verified. You can now log in."
	resendMessage = "If the account exists and is not verified yet, a new verification link has been sent."
	forgotMessage = "If an account exists for that email, a password reset link has been sent."
	resetMessage  = "Password updated. You can now log in."
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Register(r.Context(), req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("signup rejected")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: signupMessage}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("login rejected")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// externalLogin serves both /auth/external {assertion} and the Google
// button's /auth/google {token}.
func (h *Handler) externalLogin(w http.ResponseWriter, r *http.Request) {
	var req models.ExternalAuthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.AuthenticateExternal(r.Context(), req)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("external login rejected")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: verifyMessage}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.ResendVerificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: resendMessage}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: forgotMessage}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: resetMessage}, http.StatusOK)
}
