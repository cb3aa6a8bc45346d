package dto

type CreateUserInput struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
	Role        string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserInput: nil field = untouched. Balance and role are not
// updatable here; balance only moves through settlement or the admin
// override below.
type UpdateUserInput struct {
	Username      *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email         *string `json:"email" validate:"omitempty,email"`
	FullName      *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	PhoneNumber   *string `json:"phone_number" validate:"omitempty,min=10,max=15"`
	AccountStatus *string `json:"account_status" validate:"omitempty,oneof=ACTIVE SUSPENDED BLOCKED"`
}

// SetBalanceInput is the admin absolute balance write.
type SetBalanceInput struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

type ListUsersInput struct {
	Limit  int `query:"limit" validate:"omitempty,gt=0,lte=500"`
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}
