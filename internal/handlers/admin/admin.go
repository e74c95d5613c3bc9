package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/dto"
	adminservice "github.com/mumbies/platform/internal/service/adminservice"
	"github.com/mumbies/platform/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID int, role *string, partnerTagID *int, enabled *bool) error
	CreateTag(ctx context.Context, tag *domain.PartnerTag) (*domain.PartnerTag, error)
	UpdateTag(ctx context.Context, tag *domain.PartnerTag) error
	ListTags(ctx context.Context) ([]domain.PartnerTag, error)
	ListApplications(ctx context.Context) ([]domain.PartnerApplication, error)
	DecideApplication(ctx context.Context, id int, approve bool, partnerTagID *int) error
	ListReferralLogs(ctx context.Context) ([]domain.ReferralLog, error)
	ListEarningsLogs(ctx context.Context) ([]domain.ReferralEarningsLog, error)
	TriggerSync(ctx context.Context) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListUsers godoc
//
//	@Summary	List accounts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserItemDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserItemDTO, len(users))
	for i, u := range users {
		response[i] = dto.UserItemDTO{
			ID:                 u.ID,
			Email:              u.Email,
			Role:               u.Role,
			ReferralCode:       u.ReferralCode,
			PartnerTagID:       u.PartnerTagID,
			TotalReferredUsers: u.TotalReferredUsers,
			Enabled:            u.Enabled,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUser godoc
//
//	@Summary	Update role, partner tag or enabled flag
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int							true	"User id"
//	@Param		request	body	dto.UpdateUserRequestDTO	true	"Fields to change"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Router		/api/v1/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Role != nil {
		switch *req.Role {
		case domain.RoleCustomer, domain.RolePartner, domain.RoleAdmin:
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown role")
			return
		}
	}
	if err := h.adminService.UpdateUser(r.Context(), userID, req.Role, req.PartnerTagID, req.Enabled); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "User updated"})
}

// CreateTag godoc
//
//	@Summary	Create a partner tag
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PartnerTagRequestDTO	true	"Tag"
//	@Success	201		{object}	dto.PartnerTagItemDTO
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Router		/api/v1/admin/partner-tags [post]
func (h *AdminHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.decodeTag(w, r)
	if !ok {
		return
	}
	created, err := h.adminService.CreateTag(r.Context(), tag)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tagItem(*created))
}

// UpdateTag godoc
//
//	@Summary	Update a partner tag
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int							true	"Tag id"
//	@Param		request	body	dto.PartnerTagRequestDTO	true	"Tag"
//	@Success	200		{object}	utils.Response
//	@Router		/api/v1/admin/partner-tags/{id} [put]
func (h *AdminHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tag id")
		return
	}
	tag, ok := h.decodeTag(w, r)
	if !ok {
		return
	}
	tag.ID = id
	if err := h.adminService.UpdateTag(r.Context(), tag); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Tag updated"})
}

// ListTags godoc
//
//	@Summary	List partner tags
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.PartnerTagItemDTO
//	@Router		/api/v1/admin/partner-tags [get]
func (h *AdminHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.adminService.ListTags(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PartnerTagItemDTO, len(tags))
	for i, tag := range tags {
		response[i] = tagItem(tag)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListApplications godoc
//
//	@Summary	List partner applications
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.ApplicationItemDTO
//	@Router		/api/v1/admin/partner-applications [get]
func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.adminService.ListApplications(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ApplicationItemDTO, len(apps))
	for i, app := range apps {
		response[i] = dto.ApplicationItemDTO{
			ID:        app.ID,
			UserID:    app.UserID,
			Company:   app.Company,
			Message:   app.Message,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
			DecidedAt: app.DecidedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DecideApplication godoc
//
//	@Summary	Approve or reject a partner application
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int								true	"Application id"
//	@Param		request	body	dto.DecideApplicationRequestDTO	true	"Decision"
//	@Success	200		{object}	utils.Response
//	@Failure	404		{object}	utils.Response	"Application not found"
//	@Failure	409		{object}	utils.Response	"Already decided"
//	@Router		/api/v1/admin/partner-applications/{id} [post]
func (h *AdminHandler) DecideApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	var req dto.DecideApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.adminService.DecideApplication(r.Context(), id, req.Approve, req.PartnerTagID); err != nil {
		switch {
		case errors.Is(err, adminservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adminservice.ErrApplicationDecided):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Application decided"})
}

// ListReferralLogs godoc
//
//	@Summary	List all referral assignment logs
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.AdminReferralLogItemDTO
//	@Router		/api/v1/admin/referral-logs [get]
func (h *AdminHandler) ListReferralLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminService.ListReferralLogs(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AdminReferralLogItemDTO, len(logs))
	for i, log := range logs {
		response[i] = dto.AdminReferralLogItemDTO{
			ID:        log.ID,
			UserID:    log.UserID,
			RefererID: log.RefererID,
			CodeUsed:  log.CodeUsed,
			CreatedAt: log.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListEarningsLogs godoc
//
//	@Summary	List the referral earnings ledger
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.AdminEarningsLogItemDTO
//	@Router		/api/v1/admin/referral-earnings-logs [get]
func (h *AdminHandler) ListEarningsLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminService.ListEarningsLogs(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AdminEarningsLogItemDTO, len(logs))
	for i, log := range logs {
		response[i] = dto.AdminEarningsLogItemDTO{
			ID:             log.ID,
			UserID:         log.UserID,
			RefererID:      log.RefererID,
			ShopifyOrderID: log.ShopifyOrderID,
			Amount:         log.Amount.StringFixed(2),
			CreatedAt:      log.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SyncProducts godoc
//
//	@Summary	Trigger an immediate Shopify catalog sync
//	@Tags		Admin
//	@Security	BearerAuth
//	@Success	202	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Sync already running"
//	@Router		/api/v1/admin/products/sync-shopify [post]
func (h *AdminHandler) SyncProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.TriggerSync(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Success: true, Message: "Sync started"})
}

func (h *AdminHandler) decodeTag(w http.ResponseWriter, r *http.Request) (*domain.PartnerTag, bool) {
	var req dto.PartnerTagRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	pct := decimal.Zero
	if req.ReferralPercentage != "" {
		parsed, err := decimal.NewFromString(req.ReferralPercentage)
		if err != nil || parsed.IsNegative() {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid referral percentage")
			return nil, false
		}
		pct = parsed
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	return &domain.PartnerTag{Name: req.Name, ReferralPercentage: pct, Enabled: enabled}, true
}

func tagItem(tag domain.PartnerTag) dto.PartnerTagItemDTO {
	return dto.PartnerTagItemDTO{
		ID:                 tag.ID,
		Name:               tag.Name,
		ReferralPercentage: tag.ReferralPercentage.StringFixed(2),
		Enabled:            tag.Enabled,
	}
}
