package partnerrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) CreateTag(ctx context.Context, tag *domain.PartnerTag) (*domain.PartnerTag, error) {
	query := `
		INSERT INTO partner_tags (name, referral_percentage, enabled)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tag.Name, tag.ReferralPercentage, tag.Enabled).Scan(&tag.ID)
	if err != nil {
		zap.L().Error("can't save partner tag", zap.Error(err))
		return nil, err
	}
	return tag, nil
}

func (r *Repository) UpdateTag(ctx context.Context, tag *domain.PartnerTag) error {
	_, err := r.db.Exec(ctx, `
		UPDATE partner_tags
		SET name = $1, referral_percentage = $2, enabled = $3
		WHERE id = $4
	`, tag.Name, tag.ReferralPercentage, tag.Enabled, tag.ID)
	if err != nil {
		zap.L().Error("can't update partner tag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListTags(ctx context.Context) ([]domain.PartnerTag, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, referral_percentage, enabled FROM partner_tags ORDER BY name")
	if err != nil {
		zap.L().Error("can't list partner tags", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tags []domain.PartnerTag
	for rows.Next() {
		var tag domain.PartnerTag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.ReferralPercentage, &tag.Enabled); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *Repository) CreateApplication(ctx context.Context, app *domain.PartnerApplication) (*domain.PartnerApplication, error) {
	query := `
		INSERT INTO partner_applications (user_id, company, message)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`
	err := r.db.QueryRow(ctx, query, app.UserID, app.Company, app.Message).
		Scan(&app.ID, &app.Status, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save partner application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindOpenApplication(ctx context.Context, userID int) (*domain.PartnerApplication, error) {
	query := `
		SELECT id, user_id, company, message, status, created_at, decided_at
		FROM partner_applications
		WHERE user_id = $1 AND status = $2
	`
	var app domain.PartnerApplication
	err := r.db.QueryRow(ctx, query, userID, domain.ApplicationPending).
		Scan(&app.ID, &app.UserID, &app.Company, &app.Message, &app.Status, &app.CreatedAt, &app.DecidedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find partner application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindApplicationByID(ctx context.Context, id int) (*domain.PartnerApplication, error) {
	query := `
		SELECT id, user_id, company, message, status, created_at, decided_at
		FROM partner_applications
		WHERE id = $1
	`
	var app domain.PartnerApplication
	err := r.db.QueryRow(ctx, query, id).
		Scan(&app.ID, &app.UserID, &app.Company, &app.Message, &app.Status, &app.CreatedAt, &app.DecidedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find partner application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) ListApplications(ctx context.Context) ([]domain.PartnerApplication, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, company, message, status, created_at, decided_at
		FROM partner_applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		zap.L().Error("can't list partner applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.PartnerApplication
	for rows.Next() {
		var app domain.PartnerApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.Company, &app.Message, &app.Status, &app.CreatedAt, &app.DecidedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// DecideApplication flips a pending application exactly once.
func (r *Repository) DecideApplication(ctx context.Context, id int, status string, decidedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE partner_applications
		SET status = $1, decided_at = $2
		WHERE id = $3 AND status = $4
	`, status, decidedAt, id, domain.ApplicationPending)
	if err != nil {
		zap.L().Error("can't decide partner application", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, card_last4)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.CardLast4).
		Scan(&withdrawal.ID, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) ListWithdrawalsByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, amount, card_last4, status, created_at
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		zap.L().Error("can't list withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.CardLast4, &w.Status, &w.CreatedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

// InTransaction wraps the withdrawal debit + insert pair.
func (r *Repository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, fn)
}
