package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/dto"
	"github.com/appdotbuilder/payment-gateway-id/pkg/logger"
)

// SummaryStore is the read-only slice of the ledger the aggregator
// scans: successful transactions inside a window.
type SummaryStore interface {
	SummarizeRange(ctx context.Context, start, end time.Time) ([]model.TypeTotal, int64, error)
}

// ReportCache holds recently computed reports. Get returns (nil, nil)
// on miss; a nil cache disables caching entirely.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.ReportData, error)
	Set(ctx context.Context, key string, data *dto.ReportData) error
}

type ReportUsecase struct {
	store SummaryStore
	cache ReportCache
}

func NewReportUsecase(store SummaryStore, cache ReportCache) *ReportUsecase {
	return &ReportUsecase{store: store, cache: cache}
}

// DashboardReport resolves the window, then aggregates successful
// transactions inside it. Pure read; reports tolerate racing
// settlements (snapshot semantics, not linearizable).
func (u *ReportUsecase) DashboardReport(ctx context.Context, in dto.GetReportInput) (*dto.ReportData, error) {
	var explicitStart, explicitEnd *time.Time
	if in.StartDate != "" {
		t, err := time.Parse(time.RFC3339, in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be RFC3339", repository.ErrInvalidInput)
		}
		t = t.UTC()
		explicitStart = &t
	}
	if in.EndDate != "" {
		t, err := time.Parse(time.RFC3339, in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be RFC3339", repository.ErrInvalidInput)
		}
		t = t.UTC()
		explicitEnd = &t
	}

	start, end := resolveWindow(model.ReportPeriod(in.Period), explicitStart, explicitEnd, time.Now().UTC())

	key := cacheKey(in.Period, start, end)
	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, key); err != nil {
			logger.Warnf("report cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	rows, activeUsers, err := u.store.SummarizeRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportData{
		Period:           in.Period,
		StartDate:        start,
		EndDate:          end,
		ActiveUsersCount: activeUsers,
	}
	for _, row := range rows {
		total := row.Total.InexactFloat64()
		report.TransactionCount += row.Count
		switch row.Type {
		case model.TypeTopUp:
			report.TotalTopUp = total
		case model.TypePayment:
			report.TotalPayments = total
		case model.TypeWithdrawal:
			report.TotalWithdrawals = total
		}
	}
	report.NetRevenue = report.TotalTopUp + report.TotalPayments - report.TotalWithdrawals

	if u.cache != nil {
		if err := u.cache.Set(ctx, key, report); err != nil {
			logger.Warnf("report cache write failed: %v", err)
		}
	}
	return report, nil
}

// resolveWindow turns a period into a concrete [start, end] range.
// Explicit bounds override the period when both are supplied.
func resolveWindow(period model.ReportPeriod, explicitStart, explicitEnd *time.Time, now time.Time) (time.Time, time.Time) {
	if explicitStart != nil && explicitEnd != nil {
		return *explicitStart, *explicitEnd
	}

	switch period {
	case model.PeriodDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return start, now
	case model.PeriodWeekly:
		return now.AddDate(0, 0, -6), now
	default: // MONTHLY
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, now
	}
}

func cacheKey(period string, start, end time.Time) string {
	return fmt.Sprintf("report:%s:%d:%d", period, start.Unix(), end.Unix())
}
