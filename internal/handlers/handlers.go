package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mumbies/platform/docs"
	"github.com/mumbies/platform/internal/config"
	adminhandlers "github.com/mumbies/platform/internal/handlers/admin"
	authhandlers "github.com/mumbies/platform/internal/handlers/auth"
	partnerhandlers "github.com/mumbies/platform/internal/handlers/partner"
	redirecthandlers "github.com/mumbies/platform/internal/handlers/redirect"
	webhookhandlers "github.com/mumbies/platform/internal/handlers/webhooks"
	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/service"
	pkgauth "github.com/mumbies/platform/pkg/auth"
)

type AuthHandler interface {
	RequestOTP(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type RedirectHandler interface {
	RefRedirect(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	AssignShopifyReferral(w http.ResponseWriter, r *http.Request)
	ShopifyPayment(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	Statistics(w http.ResponseWriter, r *http.Request)
	ReferralLogs(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Withdrawals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	CreateTag(w http.ResponseWriter, r *http.Request)
	UpdateTag(w http.ResponseWriter, r *http.Request)
	ListTags(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	DecideApplication(w http.ResponseWriter, r *http.Request)
	ListReferralLogs(w http.ResponseWriter, r *http.Request)
	ListEarningsLogs(w http.ResponseWriter, r *http.Request)
	SyncProducts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RedirectHandler RedirectHandler
	WebhookHandler  WebhookHandler
	PartnerHandler  PartnerHandler
	AdminHandler    AdminHandler

	jwtService    pkgauth.JWTServiceInterface
	storefrontURL string
}

func New(cfg *config.Config, s *service.Services, jwtService pkgauth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.Auth),
		RedirectHandler: redirecthandlers.New(s.Referral),
		WebhookHandler:  webhookhandlers.New(s.Referral, s.Earnings, cfg.ShopifyWebhookSecret),
		PartnerHandler:  partnerhandlers.New(s.Partner),
		AdminHandler:    adminhandlers.New(s.Admin),
		jwtService:      jwtService,
		storefrontURL:   cfg.StorefrontURL,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/redirects/ref-redirect/{code}", h.RedirectHandler.RefRedirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.webhookCORS().Handler)
			// chi only routes OPTIONS for explicitly registered paths
			r.Options("/webhooks/assign-shopify-referral", preflight)
			r.Options("/webhooks/shopify-payment", preflight)
			r.Post("/webhooks/assign-shopify-referral", h.WebhookHandler.AssignShopifyReferral)
			r.Post("/webhooks/shopify-payment", h.WebhookHandler.ShopifyPayment)
		})

		r.Route("/authentication", func(r chi.Router) {
			r.Post("/request-otp", h.AuthHandler.RequestOTP)
			r.Post("/verify-otp", h.AuthHandler.VerifyOTP)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AuthMiddleware(h.jwtService))
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Route("/partner", func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware(h.jwtService))
			r.Post("/apply", h.PartnerHandler.Apply)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.RequireRole(domain.RolePartner, domain.RoleAdmin))
				r.Get("/statistics", h.PartnerHandler.Statistics)
				r.Get("/referral-logs", h.PartnerHandler.ReferralLogs)
				r.Post("/withdraw", h.PartnerHandler.Withdraw)
				r.Get("/withdrawals", h.PartnerHandler.Withdrawals)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(
				pkgauth.AuthMiddleware(h.jwtService),
				pkgauth.RequireRole(domain.RoleAdmin),
			)
			r.Get("/users", h.AdminHandler.ListUsers)
			r.Patch("/users/{id}", h.AdminHandler.UpdateUser)
			r.Get("/partner-tags", h.AdminHandler.ListTags)
			r.Post("/partner-tags", h.AdminHandler.CreateTag)
			r.Put("/partner-tags/{id}", h.AdminHandler.UpdateTag)
			r.Get("/partner-applications", h.AdminHandler.ListApplications)
			r.Post("/partner-applications/{id}", h.AdminHandler.DecideApplication)
			r.Get("/referral-logs", h.AdminHandler.ListReferralLogs)
			r.Get("/referral-earnings-logs", h.AdminHandler.ListEarningsLogs)
			r.Post("/products/sync-shopify", h.AdminHandler.SyncProducts)
		})
	})

	return r
}

// webhookCORS limits browser callers to the storefront itself and
// Shopify-hosted shops. Server-to-server webhook deliveries carry no
// Origin header and pass through untouched.
func (h *Handlers) webhookCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return origin == h.storefrontURL || strings.HasSuffix(origin, ".myshopify.com")
		},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		MaxAge:               86400,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
