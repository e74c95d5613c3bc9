package adminservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mumbies/platform/internal/domain"
)

type UserRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID int, role *string, partnerTagID *int, enabled *bool) error
}

type PartnerRepo interface {
	CreateTag(ctx context.Context, tag *domain.PartnerTag) (*domain.PartnerTag, error)
	UpdateTag(ctx context.Context, tag *domain.PartnerTag) error
	ListTags(ctx context.Context) ([]domain.PartnerTag, error)
	ListApplications(ctx context.Context) ([]domain.PartnerApplication, error)
	FindApplicationByID(ctx context.Context, id int) (*domain.PartnerApplication, error)
	DecideApplication(ctx context.Context, id int, status string, decidedAt time.Time) (bool, error)
}

type LogRepo interface {
	List(ctx context.Context) ([]domain.ReferralLog, error)
}

type EarningsRepo interface {
	List(ctx context.Context) ([]domain.ReferralEarningsLog, error)
}

// Syncer triggers an immediate catalog pull.
type Syncer interface {
	SyncNow(ctx context.Context) error
}

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationDecided  = errors.New("application already decided")
)

type Service struct {
	userRepo     UserRepo
	partnerRepo  PartnerRepo
	logRepo      LogRepo
	earningsRepo EarningsRepo
	syncer       Syncer
}

func New(userRepo UserRepo, partnerRepo PartnerRepo, logRepo LogRepo, earningsRepo EarningsRepo, syncer Syncer) *Service {
	return &Service{
		userRepo:     userRepo,
		partnerRepo:  partnerRepo,
		logRepo:      logRepo,
		earningsRepo: earningsRepo,
		syncer:       syncer,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, userID int, role *string, partnerTagID *int, enabled *bool) error {
	if err := s.userRepo.Update(ctx, userID, role, partnerTagID, enabled); err != nil {
		return err
	}
	zap.L().Info("user updated", zap.Int("userID", userID))
	return nil
}

func (s *Service) CreateTag(ctx context.Context, tag *domain.PartnerTag) (*domain.PartnerTag, error) {
	return s.partnerRepo.CreateTag(ctx, tag)
}

func (s *Service) UpdateTag(ctx context.Context, tag *domain.PartnerTag) error {
	return s.partnerRepo.UpdateTag(ctx, tag)
}

func (s *Service) ListTags(ctx context.Context) ([]domain.PartnerTag, error) {
	return s.partnerRepo.ListTags(ctx)
}

func (s *Service) ListApplications(ctx context.Context) ([]domain.PartnerApplication, error) {
	return s.partnerRepo.ListApplications(ctx)
}

// DecideApplication approves or rejects exactly once; approval promotes the
// applicant to PARTNER and optionally pins a tag.
func (s *Service) DecideApplication(ctx context.Context, id int, approve bool, partnerTagID *int) error {
	app, err := s.partnerRepo.FindApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}

	status := domain.ApplicationRejected
	if approve {
		status = domain.ApplicationApproved
	}
	decided, err := s.partnerRepo.DecideApplication(ctx, id, status, time.Now())
	if err != nil {
		return err
	}
	if !decided {
		return ErrApplicationDecided
	}

	if approve {
		role := domain.RolePartner
		if err := s.userRepo.Update(ctx, app.UserID, &role, partnerTagID, nil); err != nil {
			zap.L().Error("failed to promote approved partner", zap.Error(err))
			return err
		}
	}
	zap.L().Info("partner application decided",
		zap.Int("applicationID", id), zap.String("status", status))
	return nil
}

func (s *Service) ListReferralLogs(ctx context.Context) ([]domain.ReferralLog, error) {
	return s.logRepo.List(ctx)
}

func (s *Service) ListEarningsLogs(ctx context.Context) ([]domain.ReferralEarningsLog, error) {
	return s.earningsRepo.List(ctx)
}

func (s *Service) TriggerSync(ctx context.Context) error {
	return s.syncer.SyncNow(ctx)
}
