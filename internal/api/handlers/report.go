package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils/response"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		summary, err := h.reportService.Summary(r.Context())
		if err != nil {
			logger.Error("Failed to build sales summary", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *ReportHandler) TopSellers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		sellers, err := h.reportService.TopSellers(r.Context(), limit)
		if err != nil {
			logger.Error("Failed to rank top sellers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sellers)
	}
}
