package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
)

// reportingService projects posted barter transactions into tax-season
// reports. All projections are pure folds over the rows the repository
// returns; only POSTED transactions ever reach them.
type reportingService struct {
	reportingRepo      portsrepo.ReportingRepositoryFacade
	form1099BThreshold decimal.Decimal
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, form1099BThreshold decimal.Decimal) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:      reportingRepo,
		form1099BThreshold: form1099BThreshold,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) fetchRows(ctx context.Context, year int) ([]domain.BarterReportRow, error) {
	rows, err := s.reportingRepo.FindPostedBarterRows(ctx, year)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch barter report rows", slog.String("error", err.Error()), slog.Int("year", year))
		return nil, fmt.Errorf("failed to fetch barter rows for year %d: %w", year, err)
	}
	return rows, nil
}

// GetBarterSummary returns yearly barter totals.
func (s *reportingService) GetBarterSummary(ctx context.Context, year int) (*domain.BarterSummaryReport, error) {
	rows, err := s.fetchRows(ctx, year)
	if err != nil {
		return nil, err
	}
	report := BuildBarterSummary(year, rows)
	return &report, nil
}

// GetBarterDetail returns per-transaction barter rows in the requested order.
func (s *reportingService) GetBarterDetail(ctx context.Context, params dto.BarterDetailReportParams) ([]domain.BarterReportRow, error) {
	rows, err := s.fetchRows(ctx, params.Year)
	if err != nil {
		return nil, err
	}
	return BuildBarterDetail(rows, params.SortBy), nil
}

// GetForm1099B returns per-counterparty totals at or above the reporting
// threshold.
func (s *reportingService) GetForm1099B(ctx context.Context, year int) ([]domain.Form1099BRow, error) {
	rows, err := s.fetchRows(ctx, year)
	if err != nil {
		return nil, err
	}
	return Build1099B(rows, s.form1099BThreshold), nil
}

// BuildBarterSummary folds rows into yearly totals.
func BuildBarterSummary(year int, rows []domain.BarterReportRow) domain.BarterSummaryReport {
	report := domain.BarterSummaryReport{
		Year:         year,
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, row := range rows {
		report.TransactionCount++
		report.IncomeTotal = report.IncomeTotal.Add(row.IncomeAmount)
		report.ExpenseTotal = report.ExpenseTotal.Add(row.ExpenseAmount)
	}
	return report
}

// BuildBarterDetail sorts rows by the requested field: date ascending, income
// and expense descending (largest exchanges first). Ordering is deterministic:
// ties fall back to the transaction ID.
func BuildBarterDetail(rows []domain.BarterReportRow, sortBy dto.DetailSortField) []domain.BarterReportRow {
	sorted := make([]domain.BarterReportRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch sortBy {
		case dto.SortByIncome:
			if !a.IncomeAmount.Equal(b.IncomeAmount) {
				return a.IncomeAmount.GreaterThan(b.IncomeAmount)
			}
		case dto.SortByExpense:
			if !a.ExpenseAmount.Equal(b.ExpenseAmount) {
				return a.ExpenseAmount.GreaterThan(b.ExpenseAmount)
			}
		default:
			if !a.TransactionDate.Equal(b.TransactionDate) {
				return a.TransactionDate.Before(b.TransactionDate)
			}
		}
		return a.TransactionID < b.TransactionID
	})
	return sorted
}

// Build1099B groups rows by counterparty and keeps those whose total barter
// income meets the threshold. Rows without a counterparty are skipped; they
// cannot be reported against anyone. Output is ordered by counterparty name,
// then ID.
func Build1099B(rows []domain.BarterReportRow, threshold decimal.Decimal) []domain.Form1099BRow {
	grouped := make(map[string]*domain.Form1099BRow)
	for _, row := range rows {
		if row.CounterpartyID == "" {
			continue
		}
		agg, ok := grouped[row.CounterpartyID]
		if !ok {
			agg = &domain.Form1099BRow{
				CounterpartyID:   row.CounterpartyID,
				CounterpartyName: row.CounterpartyName,
				FMVTotal:         decimal.Zero,
			}
			grouped[row.CounterpartyID] = agg
		}
		agg.TransactionCount++
		agg.FMVTotal = agg.FMVTotal.Add(row.IncomeAmount)
	}

	result := make([]domain.Form1099BRow, 0, len(grouped))
	for _, agg := range grouped {
		if agg.FMVTotal.GreaterThanOrEqual(threshold) {
			result = append(result, *agg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CounterpartyName != result[j].CounterpartyName {
			return result[i].CounterpartyName < result[j].CounterpartyName
		}
		return result[i].CounterpartyID < result[j].CounterpartyID
	})
	return result
}
