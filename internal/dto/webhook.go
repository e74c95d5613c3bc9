package dto

// AssignReferralRequestDTO is the payload the storefront tracking pixel
// posts after a visitor identifies with an email.
type AssignReferralRequestDTO struct {
	TS      int64  `json:"ts"`
	FTS     int64  `json:"fts"`
	MRC     string `json:"mrc" example:"MUMB12AB34CD"`
	SG      string `json:"sg"`
	EventID string `json:"eventId"`
	Email   string `json:"email" example:"buyer@example.com"`
}

type AssignReferralDataDTO struct {
	RefererCode string `json:"refererCode" example:"MUMB12AB34CD"`
}

// ShopifyOrder is the slice of the order webhook payload the earnings
// pipeline reads.
type ShopifyOrder struct {
	ID            int64             `json:"id"`
	OrderID       int64             `json:"order_id"`
	Email         string            `json:"email"`
	Customer      *ShopifyCustomer  `json:"customer"`
	LineItems     []ShopifyLineItem `json:"line_items"`
	SubtotalPrice string            `json:"subtotal_price"`
}

type ShopifyCustomer struct {
	Email string `json:"email"`
}

type ShopifyLineItem struct {
	Price               string               `json:"price"`
	DiscountedPrice     string               `json:"discounted_price"`
	Quantity            int                  `json:"quantity"`
	VariantID           int64                `json:"variant_id"`
	ProductID           int64                `json:"product_id"`
	DiscountAllocations []DiscountAllocation `json:"discount_allocations"`
}

type DiscountAllocation struct {
	Amount string `json:"amount"`
}
