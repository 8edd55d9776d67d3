package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"solemate/internal/domain/models"
	"solemate/internal/lib/logger/sl"
	"solemate/internal/repository"
	"solemate/internal/storage"
	"solemate/internal/transport/http/dto"
)

var ErrAlreadyInWishlist = errors.New("already in wishlist")

type WishlistService struct {
	log  *slog.Logger
	repo repository.WishlistRepository
}

func NewWishlistService(log *slog.Logger, repo repository.WishlistRepository) *WishlistService {
	return &WishlistService{log: log, repo: repo}
}

func (s *WishlistService) Add(ctx context.Context, input dto.AddWishlistInput) error {
	const op = "wishlist_service.Add"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("product_id", input.ProductID),
	)

	if _, err := s.repo.AddItem(ctx, input.ToDomain()); err != nil {
		if errors.Is(err, storage.ErrWishlistDuplicate) {
			log.Info("product already wishlisted")

			return fmt.Errorf("%s: %w", op, ErrAlreadyInWishlist)
		}

		log.Error("failed to add wishlist item", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product added to wishlist")

	return nil
}

func (s *WishlistService) List(ctx context.Context) ([]models.WishlistItem, error) {
	const op = "wishlist_service.List"

	items, err := s.repo.Items(ctx)
	if err != nil {
		s.log.Error("failed to list wishlist", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// Remove succeeds whether or not the product was wishlisted.
func (s *WishlistService) Remove(ctx context.Context, productID int64) error {
	const op = "wishlist_service.Remove"

	if err := s.repo.RemoveItem(ctx, productID); err != nil {
		s.log.Error("failed to remove wishlist item", slog.String("op", op), sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
