package productsync

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mumbies/platform/internal/config"
	"github.com/mumbies/platform/internal/domain"
	"github.com/mumbies/platform/internal/shopify"
)

const (
	pageSize     = 250
	syncInterval = 15 * time.Minute
)

type ProductRepo interface {
	UpsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpsertVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
}

type CatalogClient interface {
	ListProducts(ctx context.Context, creds shopify.Credentials, sinceID int64, limit int) ([]shopify.Product, error)
}

var ErrSyncRunning = errors.New("catalog sync already running")

// Service keeps the local product/variant tables - and with them the
// referral percentages the earnings webhook reads - in step with the shop.
type Service struct {
	creds      shopify.Credentials
	repo       ProductRepo
	client     CatalogClient
	workerPool WorkerPoolI
	interval   time.Duration
	running    atomic.Bool
}

func New(cfg *config.Config, repo ProductRepo, client CatalogClient) *Service {
	return &Service{
		creds: shopify.Credentials{
			ShopDomain:  cfg.ShopifyShopDomain,
			AccessToken: cfg.ShopifyAdminToken,
			APIVersion:  cfg.ShopifyAPIVersion,
		},
		repo:       repo,
		client:     client,
		workerPool: NewWorkerPool(10),
		interval:   syncInterval,
	}
}

// Start blocks until ctx is canceled, running the periodic sync loop.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Catalog sync service started")
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping catalog sync")
			return
		case <-ticker.C:
			if err := s.SyncNow(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
				zap.L().Error("Catalog sync failed", zap.Error(err))
			}
		}
	}
}

// SyncNow walks the whole catalog once. Overlapping runs are refused, the
// periodic tick and the admin trigger share one guard.
func (s *Service) SyncNow(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSyncRunning
	}
	defer s.running.Store(false)

	var sinceID int64
	var total int
	for {
		products, err := s.client.ListProducts(ctx, s.creds, sinceID, pageSize)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			break
		}

		var g errgroup.Group
		for _, product := range products {
			product := product
			g.Go(func() error {
				return s.workerPool.AddTask(ctx, func() error {
					return s.upsert(ctx, product)
				})
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		total += len(products)
		sinceID = products[len(products)-1].ID
		if len(products) < pageSize {
			break
		}
	}

	zap.L().Info("Catalog sync finished", zap.Int("products", total))
	return nil
}

func (s *Service) upsert(ctx context.Context, sp shopify.Product) error {
	product, err := s.repo.UpsertProduct(ctx, &domain.Product{
		ShopifyProductID: strconv.FormatInt(sp.ID, 10),
		Title:            sp.Title,
		Slug:             slug.Make(sp.Title),
		Enabled:          true,
	})
	if err != nil {
		return err
	}
	for _, v := range sp.Variants {
		if _, err := s.repo.UpsertVariant(ctx, &domain.ProductVariant{
			ProductID:        product.ID,
			ShopifyVariantID: strconv.FormatInt(v.ID, 10),
			Title:            v.Title,
		}); err != nil {
			return err
		}
	}
	return nil
}
