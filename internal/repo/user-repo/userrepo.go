package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/pg"
)

const userColumns = `id, email, role, referral_code, referrer_id, partner_tag_id,
	total_referral_earnings, withdrawable_balance, total_referred_users, enabled, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Role, &user.ReferralCode, &user.ReferrerID,
		&user.PartnerTagID, &user.TotalReferralEarnings, &user.WithdrawableBalance,
		&user.TotalReferredUsers, &user.Enabled, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE referral_code = $1", code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Create inserts a new account. On an email collision it returns nil, nil so
// the caller can fall back to the already-existing account: two concurrent
// first-visit callbacks must never produce two rows.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, role, referral_code, referrer_id, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		user.Email, user.Role, user.ReferralCode, user.ReferrerID, user.Enabled,
	).Scan(&user.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AssignReferrer links the referrer only when none is set yet. Returns false
// when another request already won the race.
func (repo *Repository) AssignReferrer(ctx context.Context, userID, refererID int) (bool, error) {
	tag, err := repo.db.Exec(ctx,
		"UPDATE users SET referrer_id = $1 WHERE id = $2 AND referrer_id IS NULL",
		refererID, userID)
	if err != nil {
		zap.L().Error("can't assign referrer", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) IncrementReferredCount(ctx context.Context, refererID int) error {
	_, err := repo.db.Exec(ctx,
		"UPDATE users SET total_referred_users = total_referred_users + 1 WHERE id = $1",
		refererID)
	if err != nil {
		zap.L().Error("can't increment referred count", zap.Error(err))
		return err
	}
	return nil
}

// CreditEarnings bumps both running totals. Runs inside the earnings
// transaction, never on its own.
func (repo *Repository) CreditEarnings(ctx context.Context, refererID int, amount decimal.Decimal) error {
	_, err := repo.db.Exec(ctx, `
		UPDATE users
		SET total_referral_earnings = total_referral_earnings + $1,
		    withdrawable_balance = withdrawable_balance + $1
		WHERE id = $2
	`, amount, refererID)
	if err != nil {
		zap.L().Error("can't credit earnings", zap.Error(err))
		return err
	}
	return nil
}

// DebitWithdrawable takes amount off the balance only when it is covered.
func (repo *Repository) DebitWithdrawable(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	tag, err := repo.db.Exec(ctx, `
		UPDATE users
		SET withdrawable_balance = withdrawable_balance - $1
		WHERE id = $2 AND withdrawable_balance >= $1
	`, amount, userID)
	if err != nil {
		zap.L().Error("can't debit withdrawable balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update applies only the provided fields.
func (repo *Repository) Update(ctx context.Context, userID int, role *string, partnerTagID *int, enabled *bool) error {
	_, err := repo.db.Exec(ctx, `
		UPDATE users
		SET role = COALESCE($1, role),
		    partner_tag_id = COALESCE($2, partner_tag_id),
		    enabled = COALESCE($3, enabled)
		WHERE id = $4
	`, role, partnerTagID, enabled, userID)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}
