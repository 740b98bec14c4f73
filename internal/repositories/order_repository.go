package repositories

import (
	"errors"
	"time"

	"tasmeem_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotPending signals that a guarded transition found the order in
	// some other status than pending (already accepted, cancelled, ...).
	ErrOrderNotPending = errors.New("order is not pending")
)

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	FindByID(db *gorm.DB, id string) (*models.Order, error)
	// FindByIDFull preloads service, parties, files and deliverables.
	FindByIDFull(db *gorm.DB, id string) (*models.Order, error)
	FindByClient(db *gorm.DB, clientID string) ([]models.Order, error)
	FindByDesigner(db *gorm.DB, designerID string) ([]models.Order, error)
	FindPendingByServices(db *gorm.DB, serviceIDs []string) ([]models.Order, error)

	// Assign atomically claims a pending order for a designer. The status
	// predicate is part of the UPDATE itself, so two concurrent accepts can
	// never both succeed; the loser sees ErrOrderNotPending.
	Assign(db *gorm.DB, orderID, designerID string) error
	UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error

	CreateFile(db *gorm.DB, file *models.OrderFile) error
	FindFiles(db *gorm.DB, orderID string) ([]models.OrderFile, error)
	CreateDeliverable(db *gorm.DB, deliverable *models.Deliverable) error
	FindDeliverables(db *gorm.DB, orderID string) ([]models.Deliverable, error)
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByIDFull(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Service").Preload("Client").Preload("Designer").
		Preload("Files").Preload("Deliverables").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByClient(db *gorm.DB, clientID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Service").
		Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindByDesigner(db *gorm.DB, designerID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Service").Preload("Client").
		Where("designer_id = ?", designerID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindPendingByServices(db *gorm.DB, serviceIDs []string) ([]models.Order, error) {
	var orders []models.Order
	if len(serviceIDs) == 0 {
		return orders, nil
	}
	err := db.Preload("Service").Preload("Client").
		Where("status = ? AND service_id IN ?", models.OrderStatusPending, serviceIDs).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) Assign(db *gorm.DB, orderID, designerID string) error {
	result := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"designer_id": designerID,
			"status":      models.OrderStatusAssigned,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the order does not exist or it is no longer pending;
		// distinguish so the service can answer 404 vs 400.
		var count int64
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return ErrOrderNotPending
	}
	return nil
}

func (r *OrderRepositoryImpl) UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	fields := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	// Completion always stamps completed_at.
	if status == models.OrderStatusCompleted {
		fields["completed_at"] = time.Now()
	}

	result := db.Model(&models.Order{}).Where("id = ?", orderID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) CreateFile(db *gorm.DB, file *models.OrderFile) error {
	return db.Create(file).Error
}

func (r *OrderRepositoryImpl) FindFiles(db *gorm.DB, orderID string) ([]models.OrderFile, error) {
	var files []models.OrderFile
	err := db.Where("order_id = ?", orderID).Order("created_at").Find(&files).Error
	return files, err
}

func (r *OrderRepositoryImpl) CreateDeliverable(db *gorm.DB, deliverable *models.Deliverable) error {
	return db.Create(deliverable).Error
}

func (r *OrderRepositoryImpl) FindDeliverables(db *gorm.DB, orderID string) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := db.Where("order_id = ?", orderID).Order("created_at").Find(&deliverables).Error
	return deliverables, err
}
