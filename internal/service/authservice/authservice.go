package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/pkg/auth"
	"github.com/mumbies/platform/pkg/referral"
)

const (
	otpTTL          = 10 * time.Minute
	tokenTTL        = 24 * time.Hour
	maxCodeAttempts = 5
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type OTPRepo interface {
	Create(ctx context.Context, code *domain.OTPCode) (*domain.OTPCode, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.OTPCode, error)
	Consume(ctx context.Context, id int) (bool, error)
}

// Mailer delivers one-time codes. The real sender lives outside this
// service.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

var (
	ErrInvalidCode  = errors.New("invalid or expired code")
	ErrUserDisabled = errors.New("account is disabled")
)

type Service struct {
	userRepo    UserRepo
	otpRepo     OTPRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	mailer      Mailer
}

func New(userRepo UserRepo, otpRepo OTPRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, mailer Mailer) *Service {
	return &Service{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		hashService: hashService,
		jwtService:  jwtService,
		mailer:      mailer,
	}
}

// RequestOTP issues a fresh 6-digit login code and hands it to the mailer.
func (s *Service) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	code, err := generateOTP()
	if err != nil {
		zap.L().Error("can't generate otp", zap.Error(err))
		return err
	}
	hash, err := s.hashService.HashCode(code)
	if err != nil {
		zap.L().Error("can't hash otp", zap.Error(err))
		return err
	}
	if _, err := s.otpRepo.Create(ctx, &domain.OTPCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(otpTTL),
	}); err != nil {
		return err
	}
	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		zap.L().Error("can't send otp", zap.Error(err))
		return err
	}
	zap.L().Info("otp issued", zap.String("email", email))
	return nil
}

// VerifyOTP consumes the code and returns a session token, creating the
// account on first login.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, err := s.otpRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if stored == nil || !s.hashService.CompareCode(stored.CodeHash, code) {
		return "", ErrInvalidCode
	}
	consumed, err := s.otpRepo.Consume(ctx, stored.ID)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", ErrInvalidCode
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.createAccount(ctx, email)
		if err != nil {
			return "", err
		}
	}
	if !user.Enabled {
		return "", ErrUserDisabled
	}

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	zap.L().Info("user authenticated", zap.String("email", email))
	return token, nil
}

func (s *Service) Profile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *Service) createAccount(ctx context.Context, email string) (*domain.User, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := referral.GenerateCode()
		if existing, err := s.userRepo.FindByReferralCode(ctx, code); err != nil {
			return nil, err
		} else if existing != nil {
			continue
		}
		user, err := s.userRepo.Create(ctx, &domain.User{
			Email:        email,
			Role:         domain.RoleCustomer,
			ReferralCode: code,
			Enabled:      true,
		})
		if err != nil {
			return nil, err
		}
		if user == nil {
			// concurrent first login created it already
			return s.userRepo.FindByEmail(ctx, email)
		}
		return user, nil
	}
	return nil, errors.New("can't generate unique referral code")
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
