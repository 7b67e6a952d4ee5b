package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout commits the in-progress sale and returns the receipt.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		transaction, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Transaction completed",
			slog.Int64("transactionId", transaction.ID),
			slog.Float64("total", transaction.Total),
			slog.Int64("items", transaction.ItemCount()),
		)
		response.Success(w, http.StatusCreated, transaction)
	}
}
