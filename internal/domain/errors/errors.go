package errors

import (
	"net/http"

	"pantry/internal/errors"
)

// Kind classifies an application error into the domain taxonomy.
type Kind string

const (
	// KindValidation marks input that was rejected before any remote call.
	KindValidation Kind = "validation"
	// KindNotFound marks a referenced record that does not exist.
	KindNotFound Kind = "not_found"
	// KindRemote marks a transport or store failure; the message is opaque to this layer.
	KindRemote Kind = "remote"
	// KindState marks an operation invoked in an invalid state, raised
	// synchronously to avoid a wasted round-trip.
	KindState Kind = "state"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Kind() Kind        // Taxonomy classification
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	kind      Kind
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode string, kind Kind, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		kind:      kind,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Kind returns the taxonomy classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		kind:      e.kind,
		message:   e.message,
		details:   details,
	}
}

// IsKind reports whether err carries an AppError of the given kind anywhere
// in its chain.
func IsKind(err error, kind Kind) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Kind() == kind
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		KindNotFound,
		"找不到該使用者帳號",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		KindNotFound,
		"找不到該使用者的延伸資料",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		KindValidation,
		"此電子郵件已被註冊",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		KindValidation,
		"電子郵件或密碼錯誤",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		KindState,
		"使用者尚未登入",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		KindValidation,
		"無效或已過期的重新整理權杖",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusForbidden,
		"SESSION_LIMIT_EXCEEDED",
		KindState,
		"已達同時登入裝置數量上限",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		KindRemote,
		"密碼處理錯誤",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		KindValidation,
		"密碼強度不足",
		"",
	)

	// Catalog and engagement errors
	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		KindNotFound,
		"找不到該食譜",
		"",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RATING_OUT_OF_RANGE",
		KindValidation,
		"評分必須介於 1 到 5 之間",
		"",
	)

	// Planning errors
	ErrMealPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_PLAN_NOT_FOUND",
		KindNotFound,
		"找不到該餐點計畫",
		"",
	)

	ErrMealPlanEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_PLAN_ENTRY_NOT_FOUND",
		KindNotFound,
		"找不到該餐點項目",
		"",
	)

	ErrShoppingListNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOPPING_LIST_NOT_FOUND",
		KindNotFound,
		"找不到該購物清單",
		"",
	)

	ErrShoppingItemNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOPPING_ITEM_NOT_FOUND",
		KindNotFound,
		"找不到該購物項目",
		"",
	)

	ErrOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		KindState,
		"您沒有權限存取此資源",
		"",
	)

	// Connectivity errors
	ErrBackendNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKEND_NOT_CONFIGURED",
		KindState,
		"後端連線設定缺失",
		"",
	)

	ErrBackendUnreachable = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKEND_UNREACHABLE",
		KindRemote,
		"無法連線至後端資料庫",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		KindValidation,
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		KindRemote,
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		KindRemote,
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		KindNotFound,
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Kind returns the taxonomy classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindRemote
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
