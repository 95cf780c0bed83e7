package seller

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SellerFormRequest is the HTTP rendition of the seller form. Field values
// are raw text; the form rules are applied by FormValidator.
type SellerFormRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	BirthDate      string `json:"birthDate"`
	BaseSalary     string `json:"baseSalary"`
	DepartmentID   *int   `json:"departmentId,omitempty"`
	// DepartmentName picks between catalog entries sharing DepartmentID.
	DepartmentName string `json:"departmentName,omitempty"`
}

// Validate checks the wire format only
func (r SellerFormRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.RuneLength(0, MaxNameLength).Error("name must be at most 70 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.When(r.BirthDate != "",
				validation.Date(DateLayout).Error("birth date must be formatted as YYYY-MM-DD"),
			),
		),
		validation.Field(&r.DepartmentID, validation.Min(1).Error("department id must be positive")),
	)
}

// ToRawFields converts the request into form values. id is the path
// parameter, empty for new sellers.
func (r SellerFormRequest) ToRawFields(id string, loc *time.Location) RawFields {
	raw := RawFields{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		BaseSalary: r.BaseSalary,
	}
	if r.BirthDate != "" {
		if loc == nil {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(DateLayout, r.BirthDate, loc); err == nil {
			raw.BirthDate = &t
		}
	}
	return raw
}
