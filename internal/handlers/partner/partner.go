package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/dto"
	partnerservice "github.com/mumbies/platform/internal/service/partnerservice"
	pkgauth "github.com/mumbies/platform/pkg/auth"
	"github.com/mumbies/platform/pkg/utils"
	"github.com/mumbies/platform/pkg/validate"
)

type Service interface {
	Statistics(ctx context.Context, userID int) (*partnerservice.Statistics, error)
	ReferralLogs(ctx context.Context, userID int) ([]domain.ReferralLog, error)
	Apply(ctx context.Context, userID int, company, message string) (*domain.PartnerApplication, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal, cardNumber string) error
	Withdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// Statistics godoc
//
//	@Summary		Partner referral statistics
//	@Tags			Partner
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PartnerStatisticsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/partner/statistics [get]
func (h *PartnerHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	stats, err := h.partnerService.Statistics(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	recent := make([]dto.EarningsLogItemDTO, len(stats.RecentEarnings))
	for i, log := range stats.RecentEarnings {
		recent[i] = dto.EarningsLogItemDTO{
			ShopifyOrderID: log.ShopifyOrderID,
			Amount:         log.Amount.StringFixed(2),
			CreatedAt:      log.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PartnerStatisticsDTO{
		TotalReferredUsers:    stats.TotalReferredUsers,
		TotalReferralEarnings: stats.TotalReferralEarnings.StringFixed(2),
		WithdrawableBalance:   stats.WithdrawableBalance.StringFixed(2),
		RecentEarnings:        recent,
	})
}

// ReferralLogs godoc
//
//	@Summary		Referral assignments credited to the caller
//	@Tags			Partner
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralLogItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/v1/partner/referral-logs [get]
func (h *PartnerHandler) ReferralLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	logs, err := h.partnerService.ReferralLogs(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ReferralLogItemDTO, len(logs))
	for i, log := range logs {
		response[i] = dto.ReferralLogItemDTO{
			UserID:    log.UserID,
			CodeUsed:  log.CodeUsed,
			CreatedAt: log.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Apply godoc
//
//	@Summary		Apply to become a partner
//	@Tags			Partner
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PartnerApplyRequestDTO	true	"Application"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Application already pending"
//	@Router			/api/v1/partner/apply [post]
func (h *PartnerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.PartnerApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Company == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := h.partnerService.Apply(r.Context(), userID, req.Company, req.Message); err != nil {
		if errors.Is(err, partnerservice.ErrApplicationOpen) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{
		Success: true,
		Message: "Application submitted",
	})
}

// Withdraw godoc
//
//	@Summary		Request a payout from the withdrawable balance
//	@Tags			Partner
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Amount and destination card"
//	@Success		200		{object}	utils.Response	"Withdrawal recorded"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Router			/api/v1/partner/withdraw [post]
func (h *PartnerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsLuhn(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	if err := h.partnerService.Withdraw(r.Context(), userID, amount, req.CardNumber); err != nil {
		switch {
		case errors.Is(err, partnerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, partnerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Success: true,
		Message: "Withdrawal recorded",
	})
}

// Withdrawals godoc
//
//	@Summary		Payout history
//	@Tags			Partner
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Withdrawal
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/v1/partner/withdrawals [get]
func (h *PartnerHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	withdrawals, err := h.partnerService.Withdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawals)
}
