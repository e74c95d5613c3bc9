package referrallogrepo

import (
	"context"

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

func (repo *Repository) Create(ctx context.Context, log *domain.ReferralLog) (*domain.ReferralLog, error) {
	query := `
		INSERT INTO referral_logs (user_id, code_used, referer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, log.UserID, log.CodeUsed, log.RefererID).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral log", zap.Error(err))
		return nil, err
	}
	return log, nil
}

func (repo *Repository) ListByReferer(ctx context.Context, refererID int) ([]domain.ReferralLog, error) {
	return repo.list(ctx,
		"SELECT id, user_id, code_used, referer_id, created_at FROM referral_logs WHERE referer_id = $1 ORDER BY created_at DESC",
		refererID)
}

func (repo *Repository) List(ctx context.Context) ([]domain.ReferralLog, error) {
	return repo.list(ctx,
		"SELECT id, user_id, code_used, referer_id, created_at FROM referral_logs ORDER BY created_at DESC")
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.ReferralLog, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list referral logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.ReferralLog
	for rows.Next() {
		var log domain.ReferralLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.CodeUsed, &log.RefererID, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
