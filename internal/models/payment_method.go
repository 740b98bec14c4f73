package models

// PaymentMethod is a mock card-on-file record. Only the last four digits of
// the card number are ever persisted; the CVV is validated and discarded.
type PaymentMethod struct {
	BaseModel
	ClientID        string `gorm:"not null;index" json:"clientId"`
	CardHolderName  string `gorm:"not null" json:"cardHolderName"`
	CardNumberLast4 string `gorm:"type:varchar(4);not null" json:"cardNumberLast4"`
	ExpiryMonth     string `gorm:"type:varchar(2);not null" json:"expiryMonth"`
	ExpiryYear      string `gorm:"type:varchar(4);not null" json:"expiryYear"`
	IsDefault       bool   `gorm:"default:false;not null" json:"isDefault"`
}
