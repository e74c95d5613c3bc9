package repo

import (
	"github.com/mumbies/platform/internal/pg"
	earningsrepo "github.com/mumbies/platform/internal/repo/earnings-repo"
	otprepo "github.com/mumbies/platform/internal/repo/otp-repo"
	partnerrepo "github.com/mumbies/platform/internal/repo/partner-repo"
	productrepo "github.com/mumbies/platform/internal/repo/product-repo"
	referrallogrepo "github.com/mumbies/platform/internal/repo/referral-log-repo"
	userrepo "github.com/mumbies/platform/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	LogRepo      *referrallogrepo.Repository
	EarningsRepo *earningsrepo.Repository
	ProductRepo  *productrepo.Repository
	PartnerRepo  *partnerrepo.Repository
	OTPRepo      *otprepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		LogRepo:      referrallogrepo.New(conn),
		EarningsRepo: earningsrepo.New(conn, txManager),
		ProductRepo:  productrepo.New(conn),
		PartnerRepo:  partnerrepo.New(conn, txManager),
		OTPRepo:      otprepo.New(conn),
	}
}
