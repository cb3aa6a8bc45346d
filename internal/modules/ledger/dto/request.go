package dto

type CreateTransactionInput struct {
	UserID        uint64  `json:"user_id" validate:"required,gt=0"`
	Type          string  `json:"type" validate:"required,oneof=TOP_UP PAYMENT WITHDRAWAL"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=DANA BANK_TRANSFER CREDIT_CARD"`
	Description   *string `json:"description,omitempty"`
	ReferenceID   *string `json:"reference_id,omitempty"`
}

// SettleInput carries the terminal status a pending transaction is
// settled to. PENDING is not a valid target.
type SettleInput struct {
	Status string `json:"status" validate:"required,oneof=SUCCESS FAILED CANCELLED"`
}

type ListTransactionsInput struct {
	Type   string `query:"type" validate:"omitempty,oneof=TOP_UP PAYMENT WITHDRAWAL"`
	Status string `query:"status" validate:"omitempty,oneof=PENDING SUCCESS FAILED CANCELLED"`
	UserID uint64 `query:"user_id" validate:"omitempty,gt=0"`
	Limit  int    `query:"limit" validate:"omitempty,gt=0,lte=500"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
}
