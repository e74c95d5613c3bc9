package dto

import "time"

type UserItemDTO struct {
	ID                 int    `json:"id"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	ReferralCode       string `json:"referralCode"`
	PartnerTagID       *int   `json:"partnerTagId,omitempty"`
	TotalReferredUsers int    `json:"totalReferredUsers"`
	Enabled            bool   `json:"enabled"`
}

type UpdateUserRequestDTO struct {
	Role         *string `json:"role,omitempty" example:"PARTNER"`
	PartnerTagID *int    `json:"partnerTagId,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
}

type PartnerTagRequestDTO struct {
	Name               string `json:"name" validate:"required"`
	ReferralPercentage string `json:"referralPercentage" example:"10.00"`
	Enabled            *bool  `json:"enabled,omitempty"`
}

type PartnerTagItemDTO struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ReferralPercentage string `json:"referralPercentage"`
	Enabled            bool   `json:"enabled"`
}

type ApplicationItemDTO struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Company   string     `json:"company"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	DecidedAt *time.Time `json:"decidedAt,omitempty"`
}

type DecideApplicationRequestDTO struct {
	Approve      bool `json:"approve"`
	PartnerTagID *int `json:"partnerTagId,omitempty"`
}

type AdminReferralLogItemDTO struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	RefererID int       `json:"refererId"`
	CodeUsed  string    `json:"codeUsed"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminEarningsLogItemDTO struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	RefererID      int       `json:"refererId"`
	ShopifyOrderID string    `json:"shopifyOrderId"`
	Amount         string    `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}
