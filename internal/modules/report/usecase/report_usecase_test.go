package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummaryStore struct {
	rows        []model.TypeTotal
	activeUsers int64
	calls       int
	gotStart    time.Time
	gotEnd      time.Time
}

func (f *fakeSummaryStore) SummarizeRange(ctx context.Context, start, end time.Time) ([]model.TypeTotal, int64, error) {
	f.calls++
	f.gotStart, f.gotEnd = start, end
	return f.rows, f.activeUsers, nil
}

type fakeCache struct {
	data map[string]*dto.ReportData
	hits int
}

func (f *fakeCache) Get(ctx context.Context, key string) (*dto.ReportData, error) {
	if d, ok := f.data[key]; ok {
		f.hits++
		return d, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, data *dto.ReportData) error {
	if f.data == nil {
		f.data = make(map[string]*dto.ReportData)
	}
	f.data[key] = data
	return nil
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 5, 15, 13, 45, 0, 0, time.UTC)

	start, end := resolveWindow(model.PeriodDaily, nil, nil, now)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)

	start, end = resolveWindow(model.PeriodWeekly, nil, nil, now)
	assert.Equal(t, now.AddDate(0, 0, -6), start)
	assert.Equal(t, now, end)

	start, end = resolveWindow(model.PeriodMonthly, nil, nil, now)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)

	// explicit bounds win over the period
	es := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ee := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	start, end = resolveWindow(model.PeriodMonthly, &es, &ee, now)
	assert.Equal(t, es, start)
	assert.Equal(t, ee, end)
}

func TestDashboardReportAggregation(t *testing.T) {
	// one SUCCESS of each type; the FAILED top-up never reaches the
	// store because SummarizeRange only sees successful rows
	store := &fakeSummaryStore{
		rows: []model.TypeTotal{
			{Type: model.TypeTopUp, Total: decimal.RequireFromString("100.00"), Count: 1},
			{Type: model.TypePayment, Total: decimal.RequireFromString("50.00"), Count: 1},
			{Type: model.TypeWithdrawal, Total: decimal.RequireFromString("25.00"), Count: 1},
		},
		activeUsers: 2,
	}
	u := NewReportUsecase(store, nil)

	report, err := u.DashboardReport(context.Background(), dto.GetReportInput{
		Period: string(model.PeriodMonthly),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.TotalTopUp)
	assert.Equal(t, 50.0, report.TotalPayments)
	assert.Equal(t, 25.0, report.TotalWithdrawals)
	assert.Equal(t, int64(3), report.TransactionCount)
	assert.Equal(t, 125.0, report.NetRevenue)
	assert.Equal(t, int64(2), report.ActiveUsersCount)
	assert.Equal(t, string(model.PeriodMonthly), report.Period)
}

func TestDashboardReportExplicitWindow(t *testing.T) {
	store := &fakeSummaryStore{}
	u := NewReportUsecase(store, nil)

	_, err := u.DashboardReport(context.Background(), dto.GetReportInput{
		Period:    string(model.PeriodDaily),
		StartDate: "2024-01-01T00:00:00Z",
		EndDate:   "2024-01-31T23:59:59Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), store.gotStart)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), store.gotEnd)
}

func TestDashboardReportBadDate(t *testing.T) {
	u := NewReportUsecase(&fakeSummaryStore{}, nil)

	_, err := u.DashboardReport(context.Background(), dto.GetReportInput{
		Period:    string(model.PeriodDaily),
		StartDate: "not-a-date",
	})
	assert.Error(t, err)
}

func TestDashboardReportUsesCache(t *testing.T) {
	store := &fakeSummaryStore{activeUsers: 1}
	cache := &fakeCache{}
	u := NewReportUsecase(store, cache)

	// explicit window keeps the cache key stable across both calls
	in := dto.GetReportInput{
		Period:    string(model.PeriodDaily),
		StartDate: "2024-01-01T00:00:00Z",
		EndDate:   "2024-01-02T00:00:00Z",
	}

	_, err := u.DashboardReport(context.Background(), in)
	require.NoError(t, err)
	_, err = u.DashboardReport(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Equal(t, 1, cache.hits)
}
