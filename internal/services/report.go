package service

import (
	"context"
	"sort"

	appErrors "github.com/aaravmahajanofficial/pos-terminal-platform/internal/errors"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/models"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/utils"
)

const defaultTopSellers = 5

// ReportService derives read-only aggregates from the ledger. Nothing here
// mutates state, so identical calls return identical results.
type ReportService interface {
	Summary(ctx context.Context) (*models.SalesSummary, error)
	TopSellers(ctx context.Context, limit int) ([]models.TopSeller, error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
}

type reportService struct {
	ledgerRepo repository.LedgerRepository
}

func NewReportService(ledgerRepo repository.LedgerRepository) ReportService {
	return &reportService{ledgerRepo: ledgerRepo}
}

func (s *reportService) Summary(ctx context.Context) (*models.SalesSummary, error) {

	transactions, err := s.ledgerRepo.All(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to read the ledger").WithError(err)
	}

	summary := &models.SalesSummary{TransactionCount: len(transactions)}

	for i := range transactions {
		summary.TotalSales += transactions[i].Total
		summary.TotalItemsSold += transactions[i].ItemCount()
	}

	summary.TotalSales = utils.Round2(summary.TotalSales)

	return summary, nil
}

// TopSellers aggregates quantity by product name, descending. Ties keep the
// order in which a name first appeared in the ledger, so repeated calls over
// an unchanged ledger return the same ranking.
func (s *reportService) TopSellers(ctx context.Context, limit int) ([]models.TopSeller, error) {

	transactions, err := s.ledgerRepo.All(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to read the ledger").WithError(err)
	}

	if limit <= 0 {
		limit = defaultTopSellers
	}

	totals := make(map[string]int64)

	var names []string

	for i := range transactions {
		for _, line := range transactions[i].Items {
			if _, seen := totals[line.Name]; !seen {
				names = append(names, line.Name)
			}

			totals[line.Name] += line.Quantity
		}
	}

	sellers := make([]models.TopSeller, 0, len(names))

	for _, name := range names {
		sellers = append(sellers, models.TopSeller{Name: name, Quantity: totals[name]})
	}

	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].Quantity > sellers[j].Quantity
	})

	if len(sellers) > limit {
		sellers = sellers[:limit]
	}

	return sellers, nil
}

func (s *reportService) AllTransactions(ctx context.Context) ([]models.Transaction, error) {

	transactions, err := s.ledgerRepo.All(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to read the ledger").WithError(err)
	}

	return transactions, nil
}

func (s *reportService) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {

	transactions, err := s.ledgerRepo.Recent(ctx, limit)
	if err != nil {
		return nil, appErrors.InternalError("Failed to read the ledger").WithError(err)
	}

	return transactions, nil
}
