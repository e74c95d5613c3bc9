package service

import (
	"github.com/mumbies/platform/internal/config"
	"github.com/mumbies/platform/internal/repo"
	"github.com/mumbies/platform/internal/service/adminservice"
	"github.com/mumbies/platform/internal/service/authservice"
	"github.com/mumbies/platform/internal/service/earningsservice"
	"github.com/mumbies/platform/internal/service/partnerservice"
	"github.com/mumbies/platform/internal/service/referralservice"
	pkgauth "github.com/mumbies/platform/pkg/auth"
	"github.com/mumbies/platform/pkg/referral"
)

type Services struct {
	Auth     *authservice.Service
	Referral *referralservice.Service
	Earnings *earningsservice.Service
	Partner  *partnerservice.Service
	Admin    *adminservice.Service
}

func New(cfg *config.Config, r *repo.Repositories, jwtService pkgauth.JWTServiceInterface, syncer adminservice.Syncer) *Services {
	fingerprinter := referral.NewFingerprinter(cfg.ReferralHMACSecret, cfg.ReferralExtraSalt)

	return &Services{
		Auth: authservice.New(
			r.UserRepo, r.OTPRepo, &pkgauth.HashService{}, jwtService, authservice.NewLogMailer(),
		),
		Referral: referralservice.New(r.UserRepo, r.LogRepo, fingerprinter, cfg.StorefrontURL),
		Earnings: earningsservice.New(r.UserRepo, r.ProductRepo, r.EarningsRepo),
		Partner:  partnerservice.New(r.UserRepo, r.PartnerRepo, r.LogRepo, r.EarningsRepo),
		Admin:    adminservice.New(r.UserRepo, r.PartnerRepo, r.LogRepo, r.EarningsRepo, syncer),
	}
}
