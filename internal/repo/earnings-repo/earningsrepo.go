package earningsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create inserts a ledger entry unless the order was already credited.
// Returns false without error on a duplicate shopify_order_id.
func (r *Repository) Create(ctx context.Context, log *domain.ReferralEarningsLog) (bool, error) {
	query := `
		INSERT INTO referral_earnings_logs (user_id, referer_id, shopify_order_id, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shopify_order_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, log.UserID, log.RefererID, log.ShopifyOrderID, log.Amount)
	if err != nil {
		zap.L().Error("can't save earnings log", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// InTransaction runs fn as one atomic unit; the ledger insert and the
// balance credit either both apply or neither does.
func (r *Repository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, fn)
}

func (r *Repository) ListByReferer(ctx context.Context, refererID int, limit int) ([]domain.ReferralEarningsLog, error) {
	return r.list(ctx, `
		SELECT id, user_id, referer_id, shopify_order_id, amount, created_at
		FROM referral_earnings_logs
		WHERE referer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, refererID, limit)
}

func (r *Repository) List(ctx context.Context) ([]domain.ReferralEarningsLog, error) {
	return r.list(ctx, `
		SELECT id, user_id, referer_id, shopify_order_id, amount, created_at
		FROM referral_earnings_logs
		ORDER BY created_at DESC
	`)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.ReferralEarningsLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list earnings logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.ReferralEarningsLog
	for rows.Next() {
		var log domain.ReferralEarningsLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.RefererID, &log.ShopifyOrderID, &log.Amount, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
