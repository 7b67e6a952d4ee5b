package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cart, err := h.cartService.GetCart(r.Context())
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		result, err := h.cartService.UpdateQuantity(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if result.Warning != "" {
			logger.Warn("Quantity clamped to available stock", slog.Int64("productId", req.ProductID))
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := strconv.ParseInt(r.PathValue("productId"), 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), productID)
		if err != nil {
			logger.Error("Failed to remove item", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from cart", slog.Int64("productId", productID))
		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart cancels the in-progress sale.
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.cartService.Clear(r.Context()); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, &models.Cart{Lines: []models.CartLine{}})
	}
}
