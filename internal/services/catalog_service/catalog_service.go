package services

import (
	"context"
	"fmt"
	"log/slog"

	"solemate/internal/domain/models"
	"solemate/internal/lib/logger/sl"
	"solemate/internal/repository"
)

// CatalogService is read-only: the catalog is written by the seed tool,
// never by the serving API.
type CatalogService struct {
	log  *slog.Logger
	repo repository.ProductRepository
}

func NewCatalogService(log *slog.Logger, repo repository.ProductRepository) *CatalogService {
	return &CatalogService{log: log, repo: repo}
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	const op = "catalog_service.Products"

	products, err := s.repo.Products(ctx)
	if err != nil {
		s.log.Error("failed to list products", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return products, nil
}
