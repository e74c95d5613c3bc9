package otprepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

// Create stores a fresh code and retires any earlier active codes for the
// same email.
func (repo *Repository) Create(ctx context.Context, code *domain.OTPCode) (*domain.OTPCode, error) {
	_, err := repo.db.Exec(ctx,
		"UPDATE otp_codes SET consumed = TRUE WHERE email = $1 AND NOT consumed", code.Email)
	if err != nil {
		zap.L().Error("can't retire previous otp codes", zap.Error(err))
		return nil, err
	}

	query := `
		INSERT INTO otp_codes (email, code_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err = repo.db.QueryRow(ctx, query, code.Email, code.CodeHash, code.ExpiresAt).
		Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		zap.L().Error("can't save otp code", zap.Error(err))
		return nil, err
	}
	return code, nil
}

func (repo *Repository) FindActiveByEmail(ctx context.Context, email string) (*domain.OTPCode, error) {
	query := `
		SELECT id, email, code_hash, expires_at, consumed, created_at
		FROM otp_codes
		WHERE email = $1 AND NOT consumed AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`
	var code domain.OTPCode
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&code.ID, &code.Email, &code.CodeHash, &code.ExpiresAt, &code.Consumed, &code.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find otp code", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

// Consume marks the code used; false means it was already consumed or
// expired meanwhile, so a code can only log in once.
func (repo *Repository) Consume(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx,
		"UPDATE otp_codes SET consumed = TRUE WHERE id = $1 AND NOT consumed AND expires_at > NOW()", id)
	if err != nil {
		zap.L().Error("can't consume otp code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
