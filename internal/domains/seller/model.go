package seller

import (
	"time"

	"github.com/shopspring/decimal"

	"sellerdesk-backend/internal/domains/department"
)

// Seller is a sales person record. A nil ID marks a record that has not been
// stored yet. Department is a non-owning reference into the department catalog.
type Seller struct {
	ID         *int                   `json:"id"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	BirthDate  *time.Time             `json:"birthDate"`
	BaseSalary *decimal.Decimal       `json:"baseSalary"`
	Department *department.Department `json:"department"`
}

// IsNew reports whether the seller has never been stored
func (s *Seller) IsNew() bool {
	return s.ID == nil
}

// Clone returns a copy that shares no pointers with s, except Department
// which stays a reference.
func (s *Seller) Clone() *Seller {
	if s == nil {
		return nil
	}
	out := *s
	if s.ID != nil {
		id := *s.ID
		out.ID = &id
	}
	if s.BirthDate != nil {
		t := *s.BirthDate
		out.BirthDate = &t
	}
	if s.BaseSalary != nil {
		d := *s.BaseSalary
		out.BaseSalary = &d
	}
	return &out
}

// SellerResponse DTO for API response
type SellerResponse struct {
	ID         *int                           `json:"id"`
	Name       string                         `json:"name"`
	Email      string                         `json:"email"`
	BirthDate  string                         `json:"birthDate,omitempty"`
	BaseSalary string                         `json:"baseSalary,omitempty"`
	Department *department.DepartmentResponse `json:"department,omitempty"`
}

// ToResponse converts a Seller to its API shape. Birth dates are rendered as
// calendar days in loc (nil keeps the stored zone) and salaries with two
// decimals.
func (s *Seller) ToResponse(loc *time.Location) *SellerResponse {
	resp := &SellerResponse{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
	if s.BirthDate != nil {
		birth := *s.BirthDate
		if loc != nil {
			birth = birth.In(loc)
		}
		resp.BirthDate = birth.Format(DateLayout)
	}
	if s.BaseSalary != nil {
		resp.BaseSalary = s.BaseSalary.StringFixed(2)
	}
	if s.Department != nil {
		resp.Department = s.Department.ToResponse()
	}
	return resp
}
