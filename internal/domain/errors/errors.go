// Package errors defines application-level errors carried from the usecase
// layer to the delivery layer.
package errors

import (
	"net/http"

	"pharmacy/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
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

// Is matches errors by business error code, so a copy produced by
// WithDetails still matches its predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
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
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Arabic, matching the
// storefront's primary language.
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"المنتج غير موجود",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusConflict,
		"PRODUCT_UNAVAILABLE",
		"المنتج غير متاح حالياً",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"فئة غير معروفة",
		"",
	)

	// Cart-related errors
	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"المنتج غير موجود في السلة",
		"",
	)

	// Order-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"يرجى ملء جميع الحقول المطلوبة",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"يرجى إدخال رقم هاتف صحيح (11 رقم)",
		"",
	)

	ErrNoOpenOrderForm = NewBaseError(
		http.StatusConflict,
		"NO_OPEN_ORDER_FORM",
		"لا يوجد طلب مفتوح",
		"",
	)

	ErrOrderSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SAVE_FAILED",
		"تعذر حفظ الطلب في لوحة التحكم",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"الطلب غير موجود",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"حالة الطلب غير معروفة",
		"",
	)

	// Geolocation errors, one per terminal outcome
	ErrLocationDenied = NewBaseError(
		http.StatusForbidden,
		"LOCATION_DENIED",
		"تم رفض الإذن لتحديد الموقع",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"الموقع غير متاح",
		"",
	)

	ErrLocationTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"LOCATION_TIMEOUT",
		"انتهت مهلة تحديد الموقع",
		"",
	)

	// Back-office errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"اسم المستخدم أو كلمة المرور غير صحيحة",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"يرجى تسجيل الدخول أولاً",
		"",
	)

	ErrWrongCurrentPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_CURRENT_PASSWORD",
		"كلمة المرور الحالية غير صحيحة",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"خطأ في معالجة كلمة المرور",
		"",
	)

	// Upload errors
	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"يرجى اختيار ملف صورة صحيح",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"حجم الصورة كبير جداً (الحد الأقصى 10 ميجا)",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"فشل رفع الصورة",
		"",
	)

	ErrPosterNotFound = NewBaseError(
		http.StatusNotFound,
		"POSTER_NOT_FOUND",
		"لا يوجد بوستر حالياً",
		"",
	)

	// General errors
	ErrRemoteStoreUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_STORE_UNAVAILABLE",
		"تعذر الاتصال بقاعدة البيانات",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"خطأ داخلي في النظام",
		"",
	)
)
