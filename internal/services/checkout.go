package service

import (
	"context"

	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/metrics"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error)
}

type checkoutService struct {
	ledgerRepo repository.LedgerRepository
	tracer     trace.Tracer
}

func NewCheckoutService(ledgerRepo repository.LedgerRepository) CheckoutService {
	return &checkoutService{
		ledgerRepo: ledgerRepo,
		tracer:     otel.Tracer("pos-terminal-platform/checkout"),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Transaction, error) {

	ctx, span := s.tracer.Start(ctx, "checkout.commit")
	defer span.End()

	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, appErrors.ValidationError("Discount must be between 0 and 100")
	}

	if req.CashGiven < 0 {
		return nil, appErrors.ValidationError("Cash given must be non-negative")
	}

	transaction, err := s.ledgerRepo.Commit(ctx, req.DiscountPercent, req.CashGiven)
	if err != nil {
		span.RecordError(err)

		return nil, mapStoreError(err)
	}

	span.SetAttributes(
		attribute.Int64("pos.transaction_id", transaction.ID),
		attribute.Float64("pos.total", transaction.Total),
		attribute.Int64("pos.items", transaction.ItemCount()),
	)

	metrics.ObserveSale(transaction)

	return transaction, nil
}
