package seller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"sellerdesk-backend/internal/domains/department"
)

// Form field names, as used in error maps and JSON payloads.
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
)

// MaxNameLength is the longest seller name, in characters.
const MaxNameLength = 70

// MsgFieldEmpty is shown next to every required field left blank.
const MsgFieldEmpty = "Field can't be empty"

// DateLayout is the calendar-day format used on the wire.
const DateLayout = "2006-01-02"

// ErrFieldEmpty is the rule error for a missing required value.
var ErrFieldEmpty = validation.NewError("validation_field_empty", MsgFieldEmpty)

// notBlank fails on empty and whitespace-only strings.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return ErrFieldEmpty
	}
	return nil
})

// RawFields are form values before any conversion. The json names double as
// error map keys.
type RawFields struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	BirthDate  *time.Time `json:"birthDate"`
	BaseSalary string     `json:"baseSalary"`
}

// Validate checks every field and collects all violations.
func (r RawFields) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, notBlank),
		validation.Field(&r.Email, notBlank),
		validation.Field(&r.BirthDate, validation.Required.ErrorObject(ErrFieldEmpty)),
		validation.Field(&r.BaseSalary, notBlank),
	)
}

// FormValidator turns raw form values into a Seller.
type FormValidator struct {
	loc *time.Location
}

// NewFormValidator creates a validator that anchors birth dates to the start
// of day in loc. A nil loc means time.Local.
func NewFormValidator(loc *time.Location) *FormValidator {
	if loc == nil {
		loc = time.Local
	}
	return &FormValidator{loc: loc}
}

// Location returns the zone birth dates are anchored to.
func (v *FormValidator) Location() *time.Location {
	return v.loc
}

// Validate returns a fully populated Seller, or a *ValidationError holding
// every field violation and no Seller. selected is attached as-is and may be nil.
func (v *FormValidator) Validate(raw RawFields, selected *department.Department) (*Seller, error) {
	if err := raw.Validate(); err != nil {
		var errs validation.Errors
		if !errors.As(err, &errs) {
			return nil, err
		}
		return nil, &ValidationError{Errors: fieldMessages(errs)}
	}

	y, m, d := raw.BirthDate.Date()
	birth := time.Date(y, m, d, 0, 0, 0, 0, v.loc)

	return &Seller{
		ID:         ParseID(raw.ID),
		Name:       raw.Name,
		Email:      raw.Email,
		BirthDate:  &birth,
		BaseSalary: ParseSalary(raw.BaseSalary),
		Department: selected,
	}, nil
}

// ParseID parses an optional integer id. Anything unparsable is absent.
func ParseID(s string) *int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

// ParseSalary parses a decimal amount. Unparsable text yields nil and is not
// reported as a validation error.
func ParseSalary(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

func fieldMessages(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = err.Error()
	}
	return out
}
