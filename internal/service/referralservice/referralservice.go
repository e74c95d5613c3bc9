package referralservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/pkg/referral"
)

// MaxClockSkew bounds how long a captured redirect URL can be replayed
// through a forged pixel call.
const MaxClockSkew = 5 * time.Minute

const maxCodeAttempts = 5

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	AssignReferrer(ctx context.Context, userID, refererID int) (bool, error)
	IncrementReferredCount(ctx context.Context, refererID int) error
}

type LogRepo interface {
	Create(ctx context.Context, log *domain.ReferralLog) (*domain.ReferralLog, error)
}

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleTimestamp   = errors.New("timestamp difference too large")
	ErrRefererNotFound  = errors.New("referer not found")
	ErrNotConfigured    = referral.ErrNotConfigured
)

type Service struct {
	userRepo      UserRepo
	logRepo       LogRepo
	fingerprinter referral.FingerprinterI
	storefrontURL string
	now           func() time.Time
}

func New(userRepo UserRepo, logRepo LogRepo, fingerprinter referral.FingerprinterI, storefrontURL string) *Service {
	return &Service{
		userRepo:      userRepo,
		logRepo:       logRepo,
		fingerprinter: fingerprinter,
		storefrontURL: storefrontURL,
		now:           time.Now,
	}
}

// RedirectURL mints a signed storefront URL for a referral link visit.
func (s *Service) RedirectURL(referralCode string) (string, error) {
	if s.storefrontURL == "" {
		return "", ErrNotConfigured
	}
	ts := s.now().UnixMilli()
	sg, err := s.fingerprinter.Sign(ts, referralCode)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s?ts=%d&mrc=%s&sg=%s", s.storefrontURL, ts, referralCode, sg), nil
}

type AssignInput struct {
	TS        int64
	FTS       int64
	Code      string
	Signature string
	EventID   string
	Email     string
}

type AssignResult struct {
	RefererCode string
	// Created reports that a brand-new account was made for the email.
	Created bool
	// AlreadyLinked reports first-referrer-wins: the account kept its
	// original referrer and the presented code was discarded.
	AlreadyLinked bool
}

// Assign runs the pixel-callback pipeline: signature, freshness, referrer
// resolution, then the write-once referrer attachment.
func (s *Service) Assign(ctx context.Context, in AssignInput) (*AssignResult, error) {
	ok, err := s.fingerprinter.Verify(in.TS, in.Code, in.Signature)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidSignature
	}

	diff := in.TS - in.FTS
	if diff < 0 {
		diff = -diff
	}
	if diff > MaxClockSkew.Milliseconds() {
		return nil, ErrStaleTimestamp
	}

	referer, err := s.userRepo.FindByReferralCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if referer == nil {
		return nil, ErrRefererNotFound
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return s.assignExisting(ctx, user, referer, in.Code)
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	refererID := referer.ID
	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		Role:         domain.RoleCustomer,
		ReferralCode: code,
		ReferrerID:   &refererID,
		Enabled:      true,
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		// lost the insert race, the account exists now
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, errors.New("account vanished after insert conflict")
		}
		return s.assignExisting(ctx, user, referer, in.Code)
	}

	s.recordAssignment(ctx, created.ID, referer.ID, in.Code)
	zap.L().Info("user created with referer",
		zap.Int("userID", created.ID), zap.Int("refererID", referer.ID))
	return &AssignResult{RefererCode: referer.ReferralCode, Created: true}, nil
}

func (s *Service) assignExisting(ctx context.Context, user *domain.User, referer *domain.User, codeUsed string) (*AssignResult, error) {
	if user.ReferrerID != nil {
		return s.existingReferrerResult(ctx, user, referer)
	}

	won, err := s.userRepo.AssignReferrer(ctx, user.ID, referer.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		// a concurrent callback attached a referrer first
		fresh, err := s.userRepo.FindByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if fresh == nil || fresh.ReferrerID == nil {
			return nil, errors.New("referrer assignment lost but none recorded")
		}
		return s.existingReferrerResult(ctx, fresh, referer)
	}

	s.recordAssignment(ctx, user.ID, referer.ID, codeUsed)
	zap.L().Info("referer set for user",
		zap.Int("userID", user.ID), zap.Int("refererID", referer.ID))
	return &AssignResult{RefererCode: referer.ReferralCode}, nil
}

// existingReferrerResult echoes the code of the referrer that is actually
// attached, which is not necessarily the one presented.
func (s *Service) existingReferrerResult(ctx context.Context, user *domain.User, fallback *domain.User) (*AssignResult, error) {
	code := fallback.ReferralCode
	if *user.ReferrerID != fallback.ID {
		existing, err := s.userRepo.FindByID(ctx, *user.ReferrerID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			code = existing.ReferralCode
		}
	}
	return &AssignResult{RefererCode: code, AlreadyLinked: true}, nil
}

// recordAssignment writes the audit row and bumps the referred counter.
// Best-effort: the referrer link is the source of truth, failures here are
// logged and swallowed.
func (s *Service) recordAssignment(ctx context.Context, userID, refererID int, codeUsed string) {
	if _, err := s.logRepo.Create(ctx, &domain.ReferralLog{
		UserID:    userID,
		CodeUsed:  codeUsed,
		RefererID: refererID,
	}); err != nil {
		zap.L().Error("failed to create referral log", zap.Error(err))
	}
	if err := s.userRepo.IncrementReferredCount(ctx, refererID); err != nil {
		zap.L().Error("failed to increment referred count", zap.Error(err))
	}
}

func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := referral.GenerateCode()
		existing, err := s.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errors.New("can't generate unique referral code")
}
