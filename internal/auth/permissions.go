package auth

import (
	"tasmeem_backend/internal/models"
	"tasmeem_backend/pkg/apperrors"
)

// Capability names an order-scoped action a caller wants to perform.
// All role/ownership rules of the platform live in Can, so enforcement is
// identical across every operation and testable in isolation.
type Capability string

const (
	CapOrderView         Capability = "order:view"
	CapOrderMessage      Capability = "order:message"
	CapOrderUploadFile   Capability = "order:upload_file"
	CapOrderAccept       Capability = "order:accept"
	CapOrderStatusUpdate Capability = "order:status_update"
	CapOrderDeliver      Capability = "order:deliver"
	CapOrderAssign       Capability = "order:assign"
	CapPendingQueue      Capability = "order:pending_queue"
)

// Can decides whether caller may perform cap on order. order may be nil for
// capabilities that are not bound to a single order (the pending queue).
// Callers are expected to pass the freshly loaded order, never a cached one,
// so that the decision always reflects current persisted state.
func Can(caller *models.User, cap Capability, order *models.Order) error {
	if caller == nil {
		return apperrors.NewUnauthorizedError("User not authenticated")
	}

	switch cap {
	case CapOrderView:
		// The two parties of the order; admins may inspect any order.
		if caller.IsAdmin() {
			return nil
		}
		if order == nil || !order.IsParty(caller.ID) {
			return apperrors.ErrNotOrderParty
		}
		return nil

	case CapOrderMessage:
		// Only the two parties of the order.
		if order == nil || !order.IsParty(caller.ID) {
			return apperrors.ErrNotOrderParty
		}
		return nil

	case CapOrderUploadFile:
		// Reference attachments come from the owning client.
		if order == nil || order.ClientID != caller.ID {
			return apperrors.ErrNotOrderParty
		}
		return nil

	case CapOrderAccept, CapPendingQueue:
		if !caller.IsDesigner() {
			return apperrors.NewForbiddenError("Designer account required")
		}
		return nil

	case CapOrderDeliver:
		if !caller.IsDesigner() {
			return apperrors.NewForbiddenError("Designer account required")
		}
		if order == nil || order.DesignerID == nil || *order.DesignerID != caller.ID {
			return apperrors.ErrNotOrderParty
		}
		return nil

	case CapOrderStatusUpdate:
		// The assigned designer, or an admin.
		if caller.IsAdmin() {
			return nil
		}
		if order == nil || order.DesignerID == nil || *order.DesignerID != caller.ID {
			return apperrors.ErrNotOrderParty
		}
		return nil

	case CapOrderAssign:
		if !caller.IsAdmin() {
			return apperrors.ErrInsufficientPermissions
		}
		return nil
	}

	return apperrors.NewForbiddenError("Unknown capability")
}
