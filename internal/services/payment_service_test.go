package services

import (
	"testing"

	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentTestService() PaymentService {
	return NewPaymentService(repositories.NewPaymentRepository())
}

func TestAddPaymentMethodStoresLast4Only(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentTestService()
	client := createTestClient(t, db, "client@example.com")

	method, err := svc.AddMethod(db, client.ID, &dto.AddPaymentMethodRequest{
		CardHolderName: "Sara Ahmed",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    "09",
		ExpiryYear:     "2030",
		CVV:            "123",
		IsDefault:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "1111", method.CardNumberLast4)
	assert.True(t, method.IsDefault)

	// Neither the full number nor the CVV survive anywhere on the row.
	stored, err := repositories.NewPaymentRepository().FindByID(db, method.ID)
	require.NoError(t, err)
	assert.Equal(t, "1111", stored.CardNumberLast4)
}

func TestDefaultPaymentMethodIsExclusive(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentTestService()
	client := createTestClient(t, db, "client@example.com")

	first, err := svc.AddMethod(db, client.ID, &dto.AddPaymentMethodRequest{
		CardHolderName: "Sara Ahmed",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    "09",
		ExpiryYear:     "2030",
		CVV:            "123",
		IsDefault:      true,
	})
	require.NoError(t, err)

	second, err := svc.AddMethod(db, client.ID, &dto.AddPaymentMethodRequest{
		CardHolderName: "Sara Ahmed",
		CardNumber:     "5500000000000004",
		ExpiryMonth:    "01",
		ExpiryYear:     "2031",
		CVV:            "456",
		IsDefault:      true,
	})
	require.NoError(t, err)

	methods, err := svc.ListMethods(db, client.ID)
	require.NoError(t, err)
	require.Len(t, methods, 2)

	defaults := 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			assert.Equal(t, second.ID, m.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// Flipping the default back via update keeps exclusivity.
	_, err = svc.SetDefault(db, client.ID, first.ID, true)
	require.NoError(t, err)

	methods, err = svc.ListMethods(db, client.ID)
	require.NoError(t, err)
	for _, m := range methods {
		assert.Equal(t, m.ID == first.ID, m.IsDefault)
	}
}

func TestPaymentMethodScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newPaymentTestService()
	owner := createTestClient(t, db, "owner@example.com")
	intruder := createTestClient(t, db, "intruder@example.com")

	method, err := svc.AddMethod(db, owner.ID, &dto.AddPaymentMethodRequest{
		CardHolderName: "Owner",
		CardNumber:     "4111111111111111",
		ExpiryMonth:    "09",
		ExpiryYear:     "2030",
		CVV:            "123",
	})
	require.NoError(t, err)

	// A stranger sees nothing and cannot touch the card.
	others, err := svc.ListMethods(db, intruder.ID)
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.SetDefault(db, intruder.ID, method.ID, true)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	err = svc.DeleteMethod(db, intruder.ID, method.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	require.NoError(t, svc.DeleteMethod(db, owner.ID, method.ID))
	remaining, err := svc.ListMethods(db, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
