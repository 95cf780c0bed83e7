package seller

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationError carries one user-facing message per offending form field.
// Fields without an entry are valid.
type ValidationError struct {
	Errors map[string]string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation error: %s", strings.Join(fields, ", "))
}

// Has reports whether field failed validation
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Errors[field]
	return ok
}

// StorageError reports a failure of the backing store during a write or read.
// Nothing is committed when it is returned.
type StorageError struct {
	Op  string
	Err error
}

// Error implements error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

// Unwrap allows error wrapping compatibility
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err unless it already is a StorageError
func NewStorageError(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// SellerError is the base error for lookups in the seller domain
type SellerError struct {
	Code    string // unique error code (e.g. "SELLER_NOT_FOUND")
	Message string // human-readable message
	Err     error  // underlying error
}

// Error implements error interface
func (e *SellerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *SellerError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound   = "SELLER_NOT_FOUND"
	CodeInvalidID  = "INVALID_SELLER_ID"
	CodeValidation = "VALIDATION_ERROR"
	CodeStorage    = "STORAGE_ERROR"
)

// NewSellerNotFound creates a "seller not found" error
func NewSellerNotFound(id int) *SellerError {
	return &SellerError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("Seller %d not found", id),
	}
}

// NewInvalidSellerID creates an "invalid seller ID" error
func NewInvalidSellerID(id string) *SellerError {
	return &SellerError{
		Code:    CodeInvalidID,
		Message: fmt.Sprintf("Invalid seller ID: %s", id),
	}
}

// IsValidationError reports whether err carries field errors
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorageError reports whether err is a backing store failure
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsSellerNotFound reports whether err is a "not found" error
func IsSellerNotFound(err error) bool {
	var sErr *SellerError
	return errors.As(err, &sErr) && sErr.Code == CodeNotFound
}

// MapErrorToHTTP converts a seller error into status, message, code and
// optional details for the response envelope.
func MapErrorToHTTP(err error) (int, string, string, interface{}) {
	if err == nil {
		return http.StatusOK, "Success", "", nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, "Validation error", CodeValidation, ve.Errors
	}

	var se *StorageError
	if errors.As(err, &se) {
		return http.StatusInternalServerError, "Error saving object", CodeStorage, nil
	}

	var sErr *SellerError
	if errors.As(err, &sErr) {
		switch sErr.Code {
		case CodeNotFound:
			return http.StatusNotFound, sErr.Message, sErr.Code, nil
		case CodeInvalidID:
			return http.StatusBadRequest, sErr.Message, sErr.Code, nil
		default:
			return http.StatusInternalServerError, sErr.Message, sErr.Code, nil
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil
}
