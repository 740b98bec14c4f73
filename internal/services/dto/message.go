package dto

type SendMessageRequest struct {
	OrderID    string `json:"order_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,max=5000"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
