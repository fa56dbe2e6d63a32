package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/utils"
	"github.com/harborline/moorage/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AccountService.Signup(ctx, req); err != nil {
		log.Err(err).Msg("error occurred during signup")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "account created, check your email for the activation code",
	}, http.StatusCreated)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AccountService.Activate(ctx, req); err != nil {
		log.Err(err).Msg("error occurred during activation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "account activated",
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, token, err := h.services.AccountService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("error occurred during login")
		writeError(w, err)
		return
	}

	log.Debug().Str("accountID", account.AccountID).Msg("account successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.SuccessResponse{
		Success:     true,
		AccessToken: token.SignedString,
		User:        &account,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AccountService.Logout(ctx, accountID); err != nil {
		log.Err(err).Msg("error occurred during logout")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "logged out",
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ForgotPassword(ctx, req); err != nil {
		log.Err(err).Msg("error occurred during password recovery")
		writeError(w, err)
		return
	}

	// The response does not reveal whether the address is registered.
	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "if the address is registered, a reset code has been sent",
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, req); err != nil {
		log.Err(err).Msg("error occurred during password reset")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "password updated",
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account ID in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.UpdateProfile(ctx, accountID, req)
	if err != nil {
		log.Err(err).Msg("error occurred during profile update")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: "profile updated",
		User:    &account,
	}, http.StatusOK)
}
