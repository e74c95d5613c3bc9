package dto

import "time"

type PartnerStatisticsDTO struct {
	TotalReferredUsers    int                  `json:"totalReferredUsers"`
	TotalReferralEarnings string               `json:"totalReferralEarnings" example:"120.50"`
	WithdrawableBalance   string               `json:"withdrawableBalance" example:"80.00"`
	RecentEarnings        []EarningsLogItemDTO `json:"recentEarnings"`
}

type EarningsLogItemDTO struct {
	ShopifyOrderID string    `json:"shopifyOrderId"`
	Amount         string    `json:"amount" example:"3.00"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ReferralLogItemDTO struct {
	UserID    int       `json:"userId"`
	CodeUsed  string    `json:"codeUsed"`
	CreatedAt time.Time `json:"createdAt"`
}

type PartnerApplyRequestDTO struct {
	Company string `json:"company" validate:"required"`
	Message string `json:"message"`
}

type WithdrawRequestDTO struct {
	Amount     string `json:"amount" example:"50.00"`
	CardNumber string `json:"cardNumber" example:"4539148803436467"`
}
