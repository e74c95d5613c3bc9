package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/dto"
	authservice "github.com/mumbies/platform/internal/service/authservice"
	pkgauth "github.com/mumbies/platform/pkg/auth"
	"github.com/mumbies/platform/pkg/utils"
)

type Service interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	Profile(ctx context.Context, userID int) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RequestOTP godoc
//
//	@Summary		Request a one-time login code
//	@Description	Emails a 6-digit code to the given address. Always answers success for a well-formed email so the endpoint can't be used to probe accounts.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestOTPRequestDTO	true	"Email"
//	@Success		200		{object}	dto.RequestOTPResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/authentication/request-otp [post]
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !strings.Contains(req.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if err := h.authService.RequestOTP(r.Context(), req.Email); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RequestOTPResponseDTO{
		Message: "Code sent",
	})
}

// VerifyOTP godoc
//
//	@Summary		Exchange a one-time code for a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyOTPRequestDTO	true	"Email and code"
//	@Success		200		{object}	dto.VerifyOTPResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid or expired code"
//	@Failure		403		{object}	utils.Response	"Account disabled"
//	@Router			/api/v1/authentication/verify-otp [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.VerifyOTP(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrUserDisabled):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyOTPResponseDTO{
		Token: token,
	})
}

// Me godoc
//
//	@Summary		Current account profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/v1/authentication/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MeResponseDTO{
		ID:                    user.ID,
		Email:                 user.Email,
		Role:                  user.Role,
		ReferralCode:          user.ReferralCode,
		TotalReferralEarnings: user.TotalReferralEarnings.StringFixed(2),
		WithdrawableBalance:   user.WithdrawableBalance.StringFixed(2),
		TotalReferredUsers:    user.TotalReferredUsers,
	})
}
