package partnerservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
)

const recentEarningsLimit = 20

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	DebitWithdrawable(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

type PartnerRepo interface {
	CreateApplication(ctx context.Context, app *domain.PartnerApplication) (*domain.PartnerApplication, error)
	FindOpenApplication(ctx context.Context, userID int) (*domain.PartnerApplication, error)
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	ListWithdrawalsByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LogRepo interface {
	ListByReferer(ctx context.Context, refererID int) ([]domain.ReferralLog, error)
}

type EarningsRepo interface {
	ListByReferer(ctx context.Context, refererID int, limit int) ([]domain.ReferralEarningsLog, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrApplicationOpen     = errors.New("an application is already pending")
)

type Statistics struct {
	TotalReferredUsers    int
	TotalReferralEarnings decimal.Decimal
	WithdrawableBalance   decimal.Decimal
	RecentEarnings        []domain.ReferralEarningsLog
}

type Service struct {
	userRepo     UserRepo
	partnerRepo  PartnerRepo
	logRepo      LogRepo
	earningsRepo EarningsRepo
}

func New(userRepo UserRepo, partnerRepo PartnerRepo, logRepo LogRepo, earningsRepo EarningsRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		partnerRepo:  partnerRepo,
		logRepo:      logRepo,
		earningsRepo: earningsRepo,
	}
}

func (s *Service) Statistics(ctx context.Context, userID int) (*Statistics, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	recent, err := s.earningsRepo.ListByReferer(ctx, userID, recentEarningsLimit)
	if err != nil {
		zap.L().Error("failed to fetch recent earnings", zap.Error(err))
		return nil, err
	}
	return &Statistics{
		TotalReferredUsers:    user.TotalReferredUsers,
		TotalReferralEarnings: user.TotalReferralEarnings,
		WithdrawableBalance:   user.WithdrawableBalance,
		RecentEarnings:        recent,
	}, nil
}

func (s *Service) ReferralLogs(ctx context.Context, userID int) ([]domain.ReferralLog, error) {
	logs, err := s.logRepo.ListByReferer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch referral logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// Apply opens a partner application; one pending application per user.
func (s *Service) Apply(ctx context.Context, userID int, company, message string) (*domain.PartnerApplication, error) {
	open, err := s.partnerRepo.FindOpenApplication(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrApplicationOpen
	}
	app, err := s.partnerRepo.CreateApplication(ctx, &domain.PartnerApplication{
		UserID:  userID,
		Company: company,
		Message: message,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("partner application submitted", zap.Int("userID", userID))
	return app, nil
}

// Withdraw debits the balance and records the payout in one transaction.
// The debit is conditional on coverage, so concurrent withdrawals can't
// overdraw.
func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal, cardNumber string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	last4 := cardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	return s.partnerRepo.InTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.userRepo.DebitWithdrawable(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}
		if _, err := s.partnerRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			UserID:    userID,
			Amount:    amount,
			CardLast4: last4,
		}); err != nil {
			return err
		}
		zap.L().Info("withdrawal recorded",
			zap.Int("userID", userID), zap.String("amount", amount.StringFixed(2)))
		return nil
	})
}

func (s *Service) Withdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	return s.partnerRepo.ListWithdrawalsByUser(ctx, userID)
}
