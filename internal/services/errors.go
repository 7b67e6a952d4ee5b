package service

import (
	"errors"

	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
)

// mapStoreError translates the store's sentinel errors into the AppError
// taxonomy handlers know how to render. Unknown errors become internal.
func mapStoreError(err error) *appErrors.AppError {

	var stockErr *repository.InsufficientStockError
	if errors.As(err, &stockErr) {
		return appErrors.InsufficientStockError("Insufficient stock").WithDetail(stockErr.Error()).WithError(err)
	}

	var cashErr *repository.InsufficientCashError
	if errors.As(err, &cashErr) {
		return appErrors.InsufficientCashError("Insufficient cash given").WithDetail(cashErr.Error()).WithError(err)
	}

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return appErrors.NotFoundError("Product not found").WithError(err)
	case errors.Is(err, repository.ErrLineNotFound):
		return appErrors.BadRequestError("Item not found in the cart").WithError(err)
	case errors.Is(err, repository.ErrEmptyCart):
		return appErrors.EmptyCartError("Cannot checkout with an empty cart").WithError(err)
	}

	return appErrors.InternalError("Unexpected store error").WithError(err)
}
