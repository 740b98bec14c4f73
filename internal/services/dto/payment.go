package dto

type AddPaymentMethodRequest struct {
	CardHolderName string `json:"card_holder_name" validate:"required,max=100"`
	// Full number arrives for the mock checkout; only the last four digits
	// are persisted.
	CardNumber  string `json:"card_number" validate:"required,min=12,max=19,numeric"`
	ExpiryMonth string `json:"expiry_month" validate:"required,expiry_month"`
	ExpiryYear  string `json:"expiry_year" validate:"required,len=4,numeric"`
	// Validated, never stored.
	CVV       string `json:"cvv" validate:"required,min=3,max=4,numeric"`
	IsDefault bool   `json:"is_default"`
}

type UpdatePaymentMethodRequest struct {
	IsDefault bool `json:"is_default"`
}
