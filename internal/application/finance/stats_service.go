package finance

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
)

// StatsService computes the finance rollup served by the invoice and
// expense stats endpoints
type StatsService struct {
	invoices finance.InvoiceRepository
	expenses finance.ExpenseRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(invoices finance.InvoiceRepository, expenses finance.ExpenseRepository) *StatsService {
	return &StatsService{invoices: invoices, expenses: expenses}
}

// Stats summarises every invoice and expense
func (s *StatsService) Stats(ctx context.Context) (report.FinanceStats, error) {
	invoices, err := s.invoices.ListAll(ctx)
	if err != nil {
		return report.FinanceStats{}, fmt.Errorf("list invoices: %w", err)
	}
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return report.FinanceStats{}, fmt.Errorf("list expenses: %w", err)
	}
	return report.SummarizeFinance(invoices, expenses), nil
}
