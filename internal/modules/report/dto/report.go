package dto

import "time"

type GetReportInput struct {
	Period    string `query:"period" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
	StartDate string `query:"start_date" validate:"omitempty"`
	EndDate   string `query:"end_date" validate:"omitempty"`
}

// ReportData is the dashboard summary over one resolved window. Only
// SUCCESS transactions contribute.
type ReportData struct {
	TotalTopUp       float64   `json:"total_top_up"`
	TotalPayments    float64   `json:"total_payments"`
	TotalWithdrawals float64   `json:"total_withdrawals"`
	TransactionCount int64     `json:"transaction_count"`
	NetRevenue       float64   `json:"net_revenue"`
	ActiveUsersCount int64     `json:"active_users_count"`
	Period           string    `json:"period"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
}
