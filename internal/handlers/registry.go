package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	CatalogHandler *CatalogHandler
	OrderHandler   *OrderHandler
	MessageHandler *MessageHandler
	PaymentHandler *PaymentHandler
}
