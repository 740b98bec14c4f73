package services

import (
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PaymentService interface {
	ListMethods(db *gorm.DB, clientID string) ([]models.PaymentMethod, error)
	AddMethod(db *gorm.DB, clientID string, req *dto.AddPaymentMethodRequest) (*models.PaymentMethod, error)
	SetDefault(db *gorm.DB, clientID, methodID string, isDefault bool) (*models.PaymentMethod, error)
	DeleteMethod(db *gorm.DB, clientID, methodID string) error
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &PaymentServiceImpl{paymentRepo: paymentRepo}
}

func (s *PaymentServiceImpl) ListMethods(db *gorm.DB, clientID string) ([]models.PaymentMethod, error) {
	methods, err := s.paymentRepo.FindByClient(db, clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return methods, nil
}

// AddMethod stores a card for the mock checkout. Only the holder name, the
// last four digits and the expiry survive; number and CVV are discarded.
func (s *PaymentServiceImpl) AddMethod(db *gorm.DB, clientID string, req *dto.AddPaymentMethodRequest) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{
		ClientID:        clientID,
		CardHolderName:  req.CardHolderName,
		CardNumberLast4: req.CardNumber[len(req.CardNumber)-4:],
		ExpiryMonth:     req.ExpiryMonth,
		ExpiryYear:      req.ExpiryYear,
		IsDefault:       req.IsDefault,
	}
	if err := s.paymentRepo.Create(db, method); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return method, nil
}

func (s *PaymentServiceImpl) SetDefault(db *gorm.DB, clientID, methodID string, isDefault bool) (*models.PaymentMethod, error) {
	if err := s.paymentRepo.SetDefault(db, clientID, methodID, isDefault); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment", "Payment method not found")
		}
		return nil, apperrors.InternalError(err)
	}
	method, err := s.paymentRepo.FindByID(db, methodID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return method, nil
}

// DeleteMethod removes a card; clients can only delete their own.
func (s *PaymentServiceImpl) DeleteMethod(db *gorm.DB, clientID, methodID string) error {
	method, err := s.paymentRepo.FindByID(db, methodID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return apperrors.ErrNotFound(err, "payment", "Payment method not found")
		}
		return apperrors.InternalError(err)
	}
	if method.ClientID != clientID {
		return apperrors.ErrNotFound(nil, "payment", "Payment method not found")
	}
	return s.paymentRepo.Delete(db, method.ID)
}
