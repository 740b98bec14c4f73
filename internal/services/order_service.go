package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"tasmeem_backend/internal/auth"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/internal/storage"
	"tasmeem_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(db *gorm.DB, callerID string, req *dto.CreateOrderRequest) (*models.Order, error)
	GetOrder(db *gorm.DB, callerID, orderID string) (*dto.OrderDetail, error)
	ClientOrders(db *gorm.DB, callerID string) ([]models.Order, error)
	DesignerOrders(db *gorm.DB, callerID string) ([]models.Order, error)
	PendingForDesigner(db *gorm.DB, callerID string) ([]models.Order, error)
	Accept(db *gorm.DB, callerID, orderID string) (*models.Order, error)
	UpdateStatus(db *gorm.DB, callerID, orderID string, status models.OrderStatus) (*models.Order, error)
	AssignDesigner(db *gorm.DB, callerID, orderID, designerID string) (*models.Order, error)
	UploadFile(ctx context.Context, db *gorm.DB, callerID, orderID string, req *dto.UploadFileRequest) (*models.OrderFile, error)
	UploadDeliverable(ctx context.Context, db *gorm.DB, callerID, orderID string, req *dto.UploadFileRequest) (*models.Deliverable, error)
}

type OrderServiceImpl struct {
	userRepo      repositories.UserRepository
	orderRepo     repositories.OrderRepository
	serviceRepo   repositories.ServiceRepository
	softwareRepo  repositories.SoftwareRepository
	messageRepo   repositories.MessageRepository
	fileStore     storage.Storage
	maxUploadSize int64
}

func NewOrderService(
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	serviceRepo repositories.ServiceRepository,
	softwareRepo repositories.SoftwareRepository,
	messageRepo repositories.MessageRepository,
	fileStore storage.Storage,
	maxUploadSize int64,
) OrderService {
	return &OrderServiceImpl{
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		serviceRepo:   serviceRepo,
		softwareRepo:  softwareRepo,
		messageRepo:   messageRepo,
		fileStore:     fileStore,
		maxUploadSize: maxUploadSize,
	}
}

// CreateOrder opens a pending order and snapshots the service price onto it.
// Later catalog price edits never change what this order costs.
func (s *OrderServiceImpl) CreateOrder(db *gorm.DB, callerID string, req *dto.CreateOrderRequest) (*models.Order, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsClient() {
		return nil, apperrors.NewForbiddenError("Only clients can create orders")
	}

	service, err := s.serviceRepo.FindByID(db, req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !service.IsActive {
		return nil, apperrors.ErrServiceNotFound
	}

	order := &models.Order{
		ClientID:    caller.ID,
		ServiceID:   service.ID,
		Status:      models.OrderStatusPending,
		Price:       service.Price,
		Description: req.Description,
	}
	if err := s.orderRepo.Create(db, order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// GetOrder returns the full order view: files, deliverables and the message
// thread. Only the two parties (and admins) may read it.
func (s *OrderServiceImpl) GetOrder(db *gorm.DB, callerID, orderID string) (*dto.OrderDetail, error) {
	_, order, err := s.authorizeOrder(db, callerID, orderID, auth.CapOrderView)
	if err != nil {
		return nil, err
	}

	full, err := s.orderRepo.FindByIDFull(db, order.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.messageRepo.FindByOrder(db, order.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OrderDetail{
		Order:        full,
		Files:        full.Files,
		Deliverables: full.Deliverables,
		Messages:     messages,
	}, nil
}

func (s *OrderServiceImpl) ClientOrders(db *gorm.DB, callerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByClient(db, callerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}

func (s *OrderServiceImpl) DesignerOrders(db *gorm.DB, callerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByDesigner(db, callerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}

// PendingForDesigner routes unclaimed orders to a designer through their
// software: software links give categories, categories give active services,
// and only pending orders for those services are shown.
func (s *OrderServiceImpl) PendingForDesigner(db *gorm.DB, callerID string) ([]models.Order, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}
	if err := auth.Can(caller, auth.CapPendingQueue, nil); err != nil {
		return nil, err
	}

	categories, err := s.softwareRepo.DesignerCategories(db, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(categories) == 0 {
		return []models.Order{}, nil
	}

	services, err := s.serviceRepo.FindActiveByCategories(db, categories)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) == 0 {
		return []models.Order{}, nil
	}

	serviceIDs := make([]string, 0, len(services))
	for _, service := range services {
		serviceIDs = append(serviceIDs, service.ID)
	}

	orders, err := s.orderRepo.FindPendingByServices(db, serviceIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}

// Accept claims a pending order for the calling designer. The claim is a
// single conditional update, so of two concurrent accepts exactly one wins
// and the loser gets an already-assigned error.
func (s *OrderServiceImpl) Accept(db *gorm.DB, callerID, orderID string) (*models.Order, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}
	if err := auth.Can(caller, auth.CapOrderAccept, nil); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Assign(db, orderID, caller.ID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrOrderNotFound):
			return nil, apperrors.ErrOrderNotFound
		case apperrors.Is(err, repositories.ErrOrderNotPending):
			return nil, apperrors.ErrOrderAlreadyAssigned
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// UpdateStatus moves an order to any of the known statuses. Transitions are
// deliberately unrestricted beyond authorization; completing stamps the
// completion time.
func (s *OrderServiceImpl) UpdateStatus(db *gorm.DB, callerID, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.ErrInvalidStatus("orders", "Unknown order status")
	}

	_, _, err := s.authorizeOrder(db, callerID, orderID, auth.CapOrderStatusUpdate)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(db, orderID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// AssignDesigner hands a pending order to a specific designer. Admin only.
func (s *OrderServiceImpl) AssignDesigner(db *gorm.DB, callerID, orderID, designerID string) (*models.Order, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}
	if err := auth.Can(caller, auth.CapOrderAssign, nil); err != nil {
		return nil, err
	}

	designer, err := s.userRepo.FindByID(db, designerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("Designer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !designer.IsDesigner() {
		return nil, apperrors.NewBadRequestError("User is not a designer")
	}

	if err := s.orderRepo.Assign(db, orderID, designer.ID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrOrderNotFound):
			return nil, apperrors.ErrOrderNotFound
		case apperrors.Is(err, repositories.ErrOrderNotPending):
			return nil, apperrors.ErrOrderAlreadyAssigned
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// UploadFile attaches a client reference file to the order.
func (s *OrderServiceImpl) UploadFile(ctx context.Context, db *gorm.DB, callerID, orderID string, req *dto.UploadFileRequest) (*models.OrderFile, error) {
	caller, order, err := s.authorizeOrder(db, callerID, orderID, auth.CapOrderUploadFile)
	if err != nil {
		return nil, err
	}

	key, url, err := s.storeUpload(ctx, order.ID, req)
	if err != nil {
		return nil, err
	}

	file := &models.OrderFile{
		OrderID:    order.ID,
		FileName:   req.FileName,
		FileURL:    url,
		FileKey:    key,
		FileType:   req.FileType,
		UploadedBy: caller.ID,
	}
	if err := s.orderRepo.CreateFile(db, file); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return file, nil
}

// UploadDeliverable stores the designer's finished work and completes the
// order in the same call.
func (s *OrderServiceImpl) UploadDeliverable(ctx context.Context, db *gorm.DB, callerID, orderID string, req *dto.UploadFileRequest) (*models.Deliverable, error) {
	_, order, err := s.authorizeOrder(db, callerID, orderID, auth.CapOrderDeliver)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, apperrors.ErrOrderClosed
	}

	key, url, err := s.storeUpload(ctx, order.ID, req)
	if err != nil {
		return nil, err
	}

	deliverable := &models.Deliverable{
		OrderID:  order.ID,
		FileName: req.FileName,
		FileURL:  url,
		FileKey:  key,
		FileType: req.FileType,
	}
	if err := s.orderRepo.CreateDeliverable(db, deliverable); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.orderRepo.UpdateStatus(db, order.ID, models.OrderStatusCompleted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return deliverable, nil
}

// storeUpload decodes the base64 payload and writes it to the blob store
// under a per-order key. Returns the storage key and public URL.
func (s *OrderServiceImpl) storeUpload(ctx context.Context, orderID string, req *dto.UploadFileRequest) (string, string, error) {
	data := req.FileData
	// Tolerate data URL payloads from browser FileReader output.
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", "", apperrors.NewBadRequestError("Invalid base64 file data")
	}
	if int64(len(raw)) > s.maxUploadSize {
		return "", "", apperrors.NewBadRequestError("File exceeds the maximum upload size")
	}

	key := fmt.Sprintf("orders/%s/%s_%s", orderID, uuid.NewString()[:8], sanitizeFileName(req.FileName))
	if err := s.fileStore.Save(ctx, key, bytes.NewReader(raw), req.FileType); err != nil {
		return "", "", apperrors.InternalError(err)
	}

	url, err := s.fileStore.GetURL(ctx, key)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return key, url, nil
}

func (s *OrderServiceImpl) loadCaller(db *gorm.DB, callerID string) (*models.User, error) {
	caller, err := s.userRepo.FindByID(db, callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return caller, nil
}

func (s *OrderServiceImpl) authorizeOrder(db *gorm.DB, callerID, orderID string, capability auth.Capability) (*models.User, *models.Order, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, nil, err
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, nil, apperrors.ErrOrderNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if err := auth.Can(caller, capability, order); err != nil {
		return nil, nil, err
	}
	return caller, order, nil
}

func sanitizeFileName(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
