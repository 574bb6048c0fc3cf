package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll generates a pending TOTP secret for the caller.
//
//	@Summary		Enroll in MFA
//	@Description	Generates a TOTP secret and provisioning URL. MFA stays inactive until activated with a valid code.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	atlassdk.MFAEnrollResponse	"Secret and otpauth URL"
//	@Failure		401	{object}	httpx.MessageResponse		"Unauthenticated"
//	@Failure		409	{object}	httpx.MessageResponse		"MFA already enabled"
//	@Failure		500	{object}	httpx.MessageResponse		"Internal server error"
//	@Router			/api/auth/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	secret, otpauthURL, err := h.MFAService.Enroll(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrMFAAlreadyEnabled) {
			httpx.WriteMessage(w, http.StatusConflict, "MFA is already enabled.")
			return
		}
		log.Error("MFA enrollment failed", "user_id", userID, "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, atlassdk.MFAEnrollResponse{
		Secret:     secret,
		OTPAuthURL: otpauthURL,
	})
}

// HandleActivate verifies a TOTP code and turns MFA on for the caller.
//
//	@Summary		Activate MFA
//	@Description	Proves possession of the enrolled secret. Subsequent signins require a TOTP code.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		atlassdk.MFAActivateRequest	true	"TOTP code"
//	@Success		200		{object}	httpx.MessageResponse		"MFA enabled"
//	@Failure		400		{object}	httpx.MessageResponse		"Missing or wrong code, or not enrolled"
//	@Failure		401		{object}	httpx.MessageResponse		"Unauthenticated"
//	@Failure		409		{object}	httpx.MessageResponse		"MFA already enabled"
//	@Failure		500		{object}	httpx.MessageResponse		"Internal server error"
//	@Router			/api/auth/mfa/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	var req atlassdk.MFAActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "TOTP code is required.")
		return
	}

	if err := h.MFAService.Activate(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTOTPCode):
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid TOTP code.")
		case errors.Is(err, service.ErrMFANotEnrolled):
			httpx.WriteMessage(w, http.StatusBadRequest, "MFA enrollment has not been started.")
		case errors.Is(err, service.ErrMFAAlreadyEnabled):
			httpx.WriteMessage(w, http.StatusConflict, "MFA is already enabled.")
		default:
			log.Error("MFA activation failed", "user_id", userID, "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "MFA enabled.")
}

// HandleDisable turns MFA off and discards the secret.
//
//	@Summary		Disable MFA
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	httpx.MessageResponse	"MFA disabled"
//	@Failure		401	{object}	httpx.MessageResponse	"Unauthenticated"
//	@Failure		500	{object}	httpx.MessageResponse	"Internal server error"
//	@Router			/api/auth/mfa [delete].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	if err := h.MFAService.Disable(ctx, userID); err != nil {
		log.Error("MFA disable failed", "user_id", userID, "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "MFA disabled.")
}
