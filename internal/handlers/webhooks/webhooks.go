package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/dto"
	referralservice "github.com/mumbies/platform/internal/service/referralservice"
	"github.com/mumbies/platform/pkg/utils"
)

const hmacHeader = "X-Shopify-Hmac-SHA256"

type AssignService interface {
	Assign(ctx context.Context, in referralservice.AssignInput) (*referralservice.AssignResult, error)
}

type OrderService interface {
	ProcessOrder(ctx context.Context, order *dto.ShopifyOrder) error
}

type WebhookHandler struct {
	assignService AssignService
	orderService  OrderService
	webhookSecret string
}

func New(assignService AssignService, orderService OrderService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		assignService: assignService,
		orderService:  orderService,
		webhookSecret: webhookSecret,
	}
}

// AssignShopifyReferral godoc
//
//	@Summary		Attach a referrer to a storefront visitor
//	@Description	Called by the storefront tracking pixel once a visitor identifies with an email. Validates the signed referral fingerprint and attaches the referrer, creating the account when needed. First referrer wins.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AssignReferralRequestDTO	true	"Signed pixel callback"
//	@Success		200		{object}	utils.Response	"Referer set or already present"
//	@Success		201		{object}	utils.Response	"User created with referer"
//	@Failure		400		{object}	utils.Response	"Missing parameters or stale timestamp"
//	@Failure		401		{object}	utils.Response	"Invalid signature"
//	@Failure		404		{object}	utils.Response	"Referer not found"
//	@Failure		500		{object}	utils.Response	"Configuration error"
//	@Router			/api/v1/webhooks/assign-shopify-referral [post]
func (h *WebhookHandler) AssignShopifyReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.TS == 0 || req.FTS == 0 || req.MRC == "" || req.SG == "" || req.EventID == "" || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	result, err := h.assignService.Assign(r.Context(), referralservice.AssignInput{
		TS:        req.TS,
		FTS:       req.FTS,
		Code:      req.MRC,
		Signature: req.SG,
		EventID:   req.EventID,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrNotConfigured):
			utils.RespondWithError(w, http.StatusInternalServerError, "Server configuration error")
		case errors.Is(err, referralservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, referralservice.ErrStaleTimestamp):
			utils.RespondWithError(w, http.StatusBadRequest, "Timestamp difference too large")
		case errors.Is(err, referralservice.ErrRefererNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Referer not found")
		default:
			zap.L().Error("referral assignment failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Error processing webhook")
		}
		return
	}

	status := http.StatusOK
	message := "Referer set for user"
	switch {
	case result.Created:
		status = http.StatusCreated
		message = "User created with referer"
	case result.AlreadyLinked:
		message = "User already has referer"
	}
	utils.RespondWithJSON(w, status, utils.Response{
		Success: true,
		Message: message,
		Data:    dto.AssignReferralDataDTO{RefererCode: result.RefererCode},
	})
}

// ShopifyPayment godoc
//
//	@Summary		Record referral earnings for a paid order
//	@Description	Order-completion webhook. The raw body is HMAC-verified before any parsing; processing is best-effort and the webhook is acknowledged regardless so the storefront does not retry.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Webhook received"
//	@Failure		401	{object}	utils.Response	"Invalid signature"
//	@Failure		500	{object}	utils.Response	"Configuration error"
//	@Router			/api/v1/webhooks/shopify-payment [post]
func (h *WebhookHandler) ShopifyPayment(w http.ResponseWriter, r *http.Request) {
	if h.webhookSecret == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// signature covers the exact bytes sent, so verify before parsing
	if !h.verifySignature(rawBody, r.Header.Get(hmacHeader)) {
		zap.L().Warn("invalid order webhook signature")
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var order dto.ShopifyOrder
	if err := json.Unmarshal(rawBody, &order); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// best-effort: a processing failure must not trigger a retry storm
	if err := h.orderService.ProcessOrder(r.Context(), &order); err != nil {
		zap.L().Error("referral earnings processing failed", zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Success: true,
		Message: "Webhook received",
	})
}

func (h *WebhookHandler) verifySignature(body []byte, header string) bool {
	if header == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
