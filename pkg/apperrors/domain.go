package apperrors

import "net/http"

// Factories and predefined errors for the marketplace domains.

func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserType = New(
	CodeValidationFailed,
	"auth",
	"User type must be client or designer",
	http.StatusBadRequest,
)

var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Orders ---

var ErrOrderNotFound = New(
	CodeNotFound,
	"orders",
	"Order not found",
	http.StatusNotFound,
)

var ErrServiceNotFound = New(
	CodeNotFound,
	"catalog",
	"Service not found",
	http.StatusNotFound,
)

// ErrOrderAlreadyAssigned is returned when an accept races another designer
// or targets a non-pending order.
var ErrOrderAlreadyAssigned = New(
	CodeInvalidStatus,
	"orders",
	"Order already assigned",
	http.StatusBadRequest,
)

var ErrOrderClosed = New(
	CodeInvalidStatus,
	"orders",
	"Order is already completed or cancelled",
	http.StatusBadRequest,
)

var ErrNotOrderParty = New(
	CodeForbidden,
	"orders",
	"Access denied: not a party of this order",
	http.StatusForbidden,
)
