package dto

import "tasmeem_backend/internal/models"

type CreateOrderRequest struct {
	ServiceID   string `json:"service_id" validate:"required"`
	Description string `json:"description" validate:"required,max=5000"`
	// Accepted for the checkout flow; payment itself is simulated.
	PaymentMethodID string `json:"payment_method_id,omitempty" validate:"-"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// UploadFileRequest carries binary content base64-encoded in the payload.
type UploadFileRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	FileData string `json:"file_data" validate:"required"`
	FileType string `json:"file_type,omitempty" validate:"omitempty,max=100"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending assigned in_progress completed cancelled"`
}

type AssignDesignerRequest struct {
	DesignerID string `json:"designer_id" validate:"required"`
}

// OrderDetail is the full order view returned to its two parties.
type OrderDetail struct {
	Order        *models.Order        `json:"order"`
	Files        []models.OrderFile   `json:"files"`
	Deliverables []models.Deliverable `json:"deliverables"`
	Messages     []models.Message     `json:"messages"`
}
