package models

// Message is one chat entry of an order thread, exchanged between the
// order's client and its designer.
type Message struct {
	BaseModel
	OrderID    string `gorm:"not null;index" json:"orderId"`
	SenderID   string `gorm:"not null;index" json:"senderId"`
	ReceiverID string `gorm:"not null;index" json:"receiverId"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsRead     bool   `gorm:"default:false;not null" json:"isRead"`
}
