package services

import (
	"tasmeem_backend/internal/auth"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MessageNotifier pushes a freshly stored message to connected recipients.
// A nil notifier disables push delivery without affecting persistence.
type MessageNotifier interface {
	NotifyMessage(message *models.Message)
}

type MessageService interface {
	Send(db *gorm.DB, callerID string, req *dto.SendMessageRequest) (*models.Message, error)
	ListByOrder(db *gorm.DB, callerID, orderID string) ([]models.Message, error)
	MarkRead(db *gorm.DB, callerID, messageID string) error
	UnreadCount(db *gorm.DB, callerID string) (int64, error)
}

type MessageServiceImpl struct {
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
	messageRepo repositories.MessageRepository
	notifier    MessageNotifier
}

func NewMessageService(
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	messageRepo repositories.MessageRepository,
	notifier MessageNotifier,
) MessageService {
	return &MessageServiceImpl{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// Send stores a message on an order thread. The sender must be a party to
// the order; the stated receiver is recorded as given.
func (s *MessageServiceImpl) Send(db *gorm.DB, callerID string, req *dto.SendMessageRequest) (*models.Message, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(db, req.OrderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.Can(caller, auth.CapOrderMessage, order); err != nil {
		return nil, err
	}

	message := &models.Message{
		OrderID:    order.ID,
		SenderID:   caller.ID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.notifier != nil {
		s.notifier.NotifyMessage(message)
	}
	return message, nil
}

// ListByOrder returns the thread oldest first.
func (s *MessageServiceImpl) ListByOrder(db *gorm.DB, callerID, orderID string) ([]models.Message, error) {
	caller, err := s.loadCaller(db, callerID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.Can(caller, auth.CapOrderView, order); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByOrder(db, order.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// MarkRead flips the read flag. Only the recipient may do it.
func (s *MessageServiceImpl) MarkRead(db *gorm.DB, callerID, messageID string) error {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrNotFound(err, "message", "Message not found")
		}
		return apperrors.InternalError(err)
	}

	if message.ReceiverID != callerID {
		return apperrors.NewForbiddenError("Only the receiver can mark a message as read")
	}

	return s.messageRepo.MarkRead(db, message.ID)
}

func (s *MessageServiceImpl) UnreadCount(db *gorm.DB, callerID string) (int64, error) {
	count, err := s.messageRepo.CountUnread(db, callerID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *MessageServiceImpl) loadCaller(db *gorm.DB, callerID string) (*models.User, error) {
	caller, err := s.userRepo.FindByID(db, callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return caller, nil
}
