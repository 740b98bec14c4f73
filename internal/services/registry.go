package services

// ServiceContainer bundles every service for wiring into handlers.
type ServiceContainer struct {
	Auth    AuthService
	Profile ProfileService
	Catalog CatalogService
	Order   OrderService
	Message MessageService
	Payment PaymentService
}
