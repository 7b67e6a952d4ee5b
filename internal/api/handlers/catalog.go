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

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

func parseProductID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := parseProductID(r)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.catalogService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts supports ?search= for a case-insensitive name filter.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		search := r.URL.Query().Get("search")

		products, err := h.catalogService.ListProducts(r.Context(), search)
		if err != nil {
			logger.Error("Failed to fetch products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) AdjustStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := parseProductID(r)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		var req models.AdjustStockRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid adjust stock input", slog.Int64("productId", id))
			return
		}

		product, err := h.catalogService.AdjustStock(r.Context(), id, *req.Stock)
		if err != nil {
			logger.Error("Failed to adjust stock", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Stock adjusted", slog.Int64("productId", id), slog.Int64("stock", product.Stock))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) AdjustPrice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := parseProductID(r)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		var req models.AdjustPriceRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid adjust price input", slog.Int64("productId", id))
			return
		}

		product, err := h.catalogService.AdjustPrice(r.Context(), id, *req.Price)
		if err != nil {
			logger.Error("Failed to adjust price", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Price adjusted", slog.Int64("productId", id), slog.Float64("price", product.Price))
		response.Success(w, http.StatusOK, product)
	}
}
