package services

import (
	"context"
	"fmt"
	"log/slog"

	"solemate/internal/domain/models"
	"solemate/internal/lib/logger/sl"
	"solemate/internal/repository"
	"solemate/internal/transport/http/dto"
)

type OrderService struct {
	log  *slog.Logger
	repo repository.OrderRepository
}

func NewOrderService(log *slog.Logger, repo repository.OrderRepository) *OrderService {
	return &OrderService{log: log, repo: repo}
}

func (s *OrderService) PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (int64, error) {
	const op = "order_service.PlaceOrder"

	log := s.log.With(
		slog.String("op", op),
		slog.String("customer", input.Customer.Name),
	)

	log.Info("placing order", slog.Int("lines", len(input.Items)))

	id, err := s.repo.SaveOrder(ctx, input.ToDomain())
	if err != nil {
		log.Error("failed to save order", sl.Err(err))

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("order placed", slog.Int64("order_id", id))

	return id, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	const op = "order_service.ListOrders"

	orders, err := s.repo.Orders(ctx)
	if err != nil {
		s.log.Error("failed to list orders", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
