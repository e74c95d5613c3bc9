package earningsservice

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/dto"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreditEarnings(ctx context.Context, refererID int, amount decimal.Decimal) error
}

type ProductRepo interface {
	ProductPercentages(ctx context.Context) (map[string]decimal.Decimal, error)
	VariantPercentages(ctx context.Context) (map[string]decimal.Decimal, error)
}

type EarningsRepo interface {
	Create(ctx context.Context, log *domain.ReferralEarningsLog) (bool, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	userRepo     UserRepo
	productRepo  ProductRepo
	earningsRepo EarningsRepo
}

func New(userRepo UserRepo, productRepo ProductRepo, earningsRepo EarningsRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		productRepo:  productRepo,
		earningsRepo: earningsRepo,
	}
}

var oneHundred = decimal.NewFromInt(100)

// ProcessOrder computes and records the referral commission for one
// storefront order. Safe to call again with the same order id: the ledger
// keys on it, a redelivery never credits twice.
func (s *Service) ProcessOrder(ctx context.Context, order *dto.ShopifyOrder) error {
	email := order.Email
	if email == "" && order.Customer != nil {
		email = order.Customer.Email
	}
	if email == "" {
		return nil
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil || user.ReferrerID == nil {
		// order with no attributable referrer, nothing to do
		return nil
	}
	refererID := *user.ReferrerID

	byProduct, err := s.productRepo.ProductPercentages(ctx)
	if err != nil {
		return err
	}
	byVariant, err := s.productRepo.VariantPercentages(ctx)
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, item := range order.LineItems {
		price := realizedUnitPrice(item)
		pct := percentageFor(item, byVariant, byProduct)
		if pct.IsZero() || price.IsZero() || item.Quantity <= 0 {
			continue
		}
		line := decimal.NewFromInt(int64(item.Quantity)).Mul(price).Mul(pct).Div(oneHundred)
		total = total.Add(line)
	}
	total = total.Round(2)

	orderID := order.ID
	if orderID == 0 {
		orderID = order.OrderID
	}
	zap.L().Info("referral commission computed",
		zap.Int64("orderID", orderID),
		zap.Int("userID", user.ID),
		zap.Int("refererID", refererID),
		zap.String("amount", total.StringFixed(2)),
	)

	if !total.IsPositive() {
		return nil
	}

	return s.earningsRepo.InTransaction(ctx, func(ctx context.Context) error {
		inserted, err := s.earningsRepo.Create(ctx, &domain.ReferralEarningsLog{
			UserID:         user.ID,
			RefererID:      refererID,
			ShopifyOrderID: strconv.FormatInt(orderID, 10),
			Amount:         total,
		})
		if err != nil {
			return err
		}
		if !inserted {
			zap.L().Info("order already credited, skipping",
				zap.Int64("orderID", orderID))
			return nil
		}
		return s.userRepo.CreditEarnings(ctx, refererID, total)
	})
}

// realizedUnitPrice resolves what the buyer actually paid per unit:
// discounted_price when present, otherwise the listed price less any
// itemized discount allocations, floored at zero.
func realizedUnitPrice(item dto.ShopifyLineItem) decimal.Decimal {
	if item.DiscountedPrice != "" {
		if p, err := decimal.NewFromString(item.DiscountedPrice); err == nil {
			return p
		}
	}
	price, err := decimal.NewFromString(item.Price)
	if err != nil {
		return decimal.Zero
	}
	if len(item.DiscountAllocations) == 0 {
		return price
	}
	discount := decimal.Zero
	for _, alloc := range item.DiscountAllocations {
		if a, err := decimal.NewFromString(alloc.Amount); err == nil {
			discount = discount.Add(a)
		}
	}
	price = price.Sub(discount)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// percentageFor picks the variant percentage first and falls back to the
// product one when the variant is unknown or unset.
func percentageFor(item dto.ShopifyLineItem, byVariant, byProduct map[string]decimal.Decimal) decimal.Decimal {
	if item.VariantID != 0 {
		if pct, ok := byVariant[strconv.FormatInt(item.VariantID, 10)]; ok && !pct.IsZero() {
			return pct
		}
	}
	if item.ProductID != 0 {
		if pct, ok := byProduct[strconv.FormatInt(item.ProductID, 10)]; ok {
			return pct
		}
	}
	return decimal.Zero
}
