package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils/response"
)

type TransactionHandler struct {
	reportService service.ReportService
}

func NewTransactionHandler(reportService service.ReportService) *TransactionHandler {
	return &TransactionHandler{reportService: reportService}
}

// ListTransactions returns the ledger newest-first; ?limit=n caps the count,
// matching the terminal's recent-history view.
func (h *TransactionHandler) ListTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		transactions, err := h.reportService.RecentTransactions(r.Context(), limit)
		if err != nil {
			logger.Error("Failed to fetch transactions", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, transactions)
	}
}

// itemsSummary renders the fixed export format: "name xqty ($price); ...".
func itemsSummary(items []models.CartLine) string {

	parts := make([]string, 0, len(items))

	for _, line := range items {
		parts = append(parts, fmt.Sprintf("%s x%d ($%.2f)", line.Name, line.Quantity, line.UnitPrice))
	}

	return strings.Join(parts, "; ")
}

// ExportTransactions streams the whole ledger as CSV, one row per
// transaction, in commit order.
func (h *TransactionHandler) ExportTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		transactions, err := h.reportService.AllTransactions(r.Context())
		if err != nil {
			logger.Error("Failed to export transactions", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

		writer := csv.NewWriter(w)

		record := []string{"id", "date", "subtotal", "discount", "total", "cash", "change", "items"}
		if err := writer.Write(record); err != nil {
			logger.Error("Failed to write CSV header", slog.Any("error", err))
			return
		}

		for i := range transactions {

			t := &transactions[i]

			record = []string{
				strconv.FormatInt(t.ID, 10),
				t.Date.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%.2f", t.Subtotal),
				fmt.Sprintf("%.2f", t.DiscountPercent),
				fmt.Sprintf("%.2f", t.Total),
				fmt.Sprintf("%.2f", t.CashGiven),
				fmt.Sprintf("%.2f", t.Change),
				itemsSummary(t.Items),
			}

			if err := writer.Write(record); err != nil {
				logger.Error("Failed to write CSV row", slog.Int64("transactionId", t.ID), slog.Any("error", err))
				return
			}
		}

		writer.Flush()

		if err := writer.Error(); err != nil {
			logger.Error("Failed to flush CSV", slog.Any("error", err))
		}
	}
}
