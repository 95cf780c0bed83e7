package department

import (
	"errors"
	"fmt"
	"net/http"
)

// DepartmentError is the base error for the department domain
type DepartmentError struct {
	Code    string // unique error code (e.g. "DEPARTMENT_NOT_FOUND")
	Message string // human-readable message
	Err     error  // underlying error
}

// Error implements error interface
func (e *DepartmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *DepartmentError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound  = "DEPARTMENT_NOT_FOUND"
	CodeInvalidID = "INVALID_DEPARTMENT_ID"
	CodeList      = "LIST_DEPARTMENT_ERROR"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewDepartmentNotFound creates a "department not found" error
func NewDepartmentNotFound(id int) *DepartmentError {
	return &DepartmentError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("Department %d not found", id),
	}
}

// NewInvalidDepartmentID creates an "invalid department ID" error
func NewInvalidDepartmentID(id string) *DepartmentError {
	return &DepartmentError{
		Code:    CodeInvalidID,
		Message: fmt.Sprintf("Invalid department ID: %s", id),
	}
}

// NewListDepartmentError wraps a data source failure while listing
func NewListDepartmentError(err error) *DepartmentError {
	return &DepartmentError{
		Code:    CodeList,
		Message: "Failed to list departments",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// IsDepartmentNotFound reports whether err is a "not found" error
func IsDepartmentNotFound(err error) bool {
	var depErr *DepartmentError
	return errors.As(err, &depErr) && depErr.Code == CodeNotFound
}

// GetErrorCode returns the error code carried by err
func GetErrorCode(err error) string {
	var depErr *DepartmentError
	if errors.As(err, &depErr) {
		return depErr.Code
	}
	return "UNKNOWN_ERROR"
}

// MapErrorToHTTP converts a department error into status, message and code
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	var depErr *DepartmentError
	if !errors.As(err, &depErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch depErr.Code {
	case CodeNotFound:
		return http.StatusNotFound, depErr.Message, depErr.Code
	case CodeInvalidID:
		return http.StatusBadRequest, depErr.Message, depErr.Code
	default:
		return http.StatusInternalServerError, depErr.Message, depErr.Code
	}
}
