package productrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// UpsertProduct keeps the synced catalog row current while preserving the
// admin-assigned referral percentage on resync.
func (repo *Repository) UpsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (shopify_product_id, title, slug, referral_percentage, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (shopify_product_id)
		DO UPDATE SET title = EXCLUDED.title, slug = EXCLUDED.slug, enabled = EXCLUDED.enabled
		RETURNING id, referral_percentage
	`
	err := repo.db.QueryRow(ctx, query,
		product.ShopifyProductID, product.Title, product.Slug,
		product.ReferralPercentage, product.Enabled,
	).Scan(&product.ID, &product.ReferralPercentage)
	if err != nil {
		zap.L().Error("can't upsert product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (repo *Repository) UpsertVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	query := `
		INSERT INTO product_variants (product_id, shopify_variant_id, title, referral_percentage)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shopify_variant_id)
		DO UPDATE SET product_id = EXCLUDED.product_id, title = EXCLUDED.title
		RETURNING id, referral_percentage
	`
	err := repo.db.QueryRow(ctx, query,
		variant.ProductID, variant.ShopifyVariantID, variant.Title, variant.ReferralPercentage,
	).Scan(&variant.ID, &variant.ReferralPercentage)
	if err != nil {
		zap.L().Error("can't upsert product variant", zap.Error(err))
		return nil, err
	}
	return variant, nil
}

// ProductPercentages maps shopify product ids to referral percentages.
func (repo *Repository) ProductPercentages(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := repo.db.Query(ctx,
		"SELECT shopify_product_id, referral_percentage FROM products WHERE enabled")
	if err != nil {
		zap.L().Error("can't load product percentages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var pct decimal.Decimal
		if err := rows.Scan(&id, &pct); err != nil {
			return nil, err
		}
		result[id] = pct
	}
	return result, rows.Err()
}

// VariantPercentages maps shopify variant ids to referral percentages.
func (repo *Repository) VariantPercentages(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := repo.db.Query(ctx,
		"SELECT shopify_variant_id, referral_percentage FROM product_variants")
	if err != nil {
		zap.L().Error("can't load variant percentages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var pct decimal.Decimal
		if err := rows.Scan(&id, &pct); err != nil {
			return nil, err
		}
		result[id] = pct
	}
	return result, rows.Err()
}
