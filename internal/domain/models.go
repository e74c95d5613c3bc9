package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleCustomer = "CUSTOMER"
	RolePartner  = "PARTNER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID                    int             `db:"id"`
	Email                 string          `db:"email"`
	Role                  string          `db:"role"`
	ReferralCode          string          `db:"referral_code"`
	ReferrerID            *int            `db:"referrer_id"`
	PartnerTagID          *int            `db:"partner_tag_id"`
	TotalReferralEarnings decimal.Decimal `db:"total_referral_earnings"`
	WithdrawableBalance   decimal.Decimal `db:"withdrawable_balance"`
	TotalReferredUsers    int             `db:"total_referred_users"`
	Enabled               bool            `db:"enabled"`
	CreatedAt             time.Time       `db:"created_at"`
}

type ReferralLog struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	CodeUsed  string    `db:"code_used"`
	RefererID int       `db:"referer_id"`
	CreatedAt time.Time `db:"created_at"`
}

type ReferralEarningsLog struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	RefererID      int             `db:"referer_id"`
	ShopifyOrderID string          `db:"shopify_order_id"`
	Amount         decimal.Decimal `db:"amount"`
	CreatedAt      time.Time       `db:"created_at"`
}

type PartnerTag struct {
	ID                 int             `db:"id"`
	Name               string          `db:"name"`
	ReferralPercentage decimal.Decimal `db:"referral_percentage"`
	Enabled            bool            `db:"enabled"`
}

type Product struct {
	ID                 int             `db:"id"`
	ShopifyProductID   string          `db:"shopify_product_id"`
	Title              string          `db:"title"`
	Slug               string          `db:"slug"`
	ReferralPercentage decimal.Decimal `db:"referral_percentage"`
	Enabled            bool            `db:"enabled"`
}

type ProductVariant struct {
	ID                 int             `db:"id"`
	ProductID          int             `db:"product_id"`
	ShopifyVariantID   string          `db:"shopify_variant_id"`
	Title              string          `db:"title"`
	ReferralPercentage decimal.Decimal `db:"referral_percentage"`
}

type OTPCode struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Consumed  bool      `db:"consumed"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

type PartnerApplication struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	Company   string     `db:"company"`
	Message   string     `db:"message"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	DecidedAt *time.Time `db:"decided_at"`
}

type Withdrawal struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	CardLast4 string          `db:"card_last4"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}
