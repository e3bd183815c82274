package services

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"sync-backend/internal/cache"
	"sync-backend/internal/models"
)

var catalogLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "catalog").Logger()

// catalogSource is what the service needs from the catalog repository.
type catalogSource interface {
	Suppliers(ctx context.Context) ([]models.Supplier, error)
	Products(ctx context.Context) ([]models.Product, error)
}

type CatalogService struct {
	Repo catalogSource
}

func NewCatalogService(repo catalogSource) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Download returns the reference data the mobile client syncs before taking
// orders. The payload is served from Redis when a fresh copy is cached.
func (s *CatalogService) Download(ctx context.Context) (*models.DataDownload, error) {
	if payload, ok := cache.GetCachedCatalog(ctx); ok {
		catalogLogger.Info().
			Int("suppliers", len(payload.Suppliers)).
			Int("products", len(payload.Products)).
			Msg("served catalog from cache")
		return payload, nil
	}

	suppliers, err := s.Repo.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.Repo.Products(ctx)
	if err != nil {
		return nil, err
	}

	payload := &models.DataDownload{
		Suppliers: suppliers,
		Products:  products,
	}
	cache.CacheCatalog(ctx, payload)

	catalogLogger.Info().
		Int("suppliers", len(suppliers)).
		Int("products", len(products)).
		Msg("downloaded catalog")
	return payload, nil
}
