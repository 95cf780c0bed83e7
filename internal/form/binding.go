package form

import (
	"strconv"
	"time"

	"sellerdesk-backend/internal/domains/seller"
)

// BindingAdapter copies seller records to and from SellerWidgets.
type BindingAdapter struct {
	loc *time.Location
}

// NewBindingAdapter creates an adapter that shows birth dates as calendar
// days in loc. A nil loc means time.Local.
func NewBindingAdapter(loc *time.Location) *BindingAdapter {
	if loc == nil {
		loc = time.Local
	}
	return &BindingAdapter{loc: loc}
}

// LoadInto fills the widgets from s. Salaries are shown with two decimals.
// A seller without department selects the first option, if any.
func (b *BindingAdapter) LoadInto(w SellerWidgets, s *seller.Seller) {
	if s.ID != nil {
		w.ID.SetText(strconv.Itoa(*s.ID))
	} else {
		w.ID.SetText("")
	}
	w.Name.SetText(s.Name)
	w.Email.SetText(s.Email)

	if s.BirthDate != nil {
		y, m, d := s.BirthDate.In(b.loc).Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, b.loc)
		w.BirthDate.SetDate(&day)
	} else {
		w.BirthDate.SetDate(nil)
	}

	if s.BaseSalary != nil {
		w.BaseSalary.SetText(s.BaseSalary.StringFixed(2))
	} else {
		w.BaseSalary.SetText("")
	}

	switch options := w.Department.Options(); {
	case s.Department != nil:
		d := *s.Department
		w.Department.Select(&d)
	case len(options) > 0:
		first := options[0]
		w.Department.Select(&first)
	default:
		w.Department.Select(nil)
	}
}

// ExtractFrom reads the current widget values.
func (b *BindingAdapter) ExtractFrom(w SellerWidgets) seller.RawFields {
	return seller.RawFields{
		ID:         w.ID.Text(),
		Name:       w.Name.Text(),
		Email:      w.Email.Text(),
		BirthDate:  w.BirthDate.Date(),
		BaseSalary: w.BaseSalary.Text(),
	}
}

// DisplayErrors writes each field message to its label and clears the labels
// of fields without an error.
func (b *BindingAdapter) DisplayErrors(errs map[string]string, w SellerWidgets) {
	w.NameError.SetText(errs[seller.FieldName])
	w.EmailError.SetText(errs[seller.FieldEmail])
	w.BirthDateError.SetText(errs[seller.FieldBirthDate])
	w.BaseSalaryError.SetText(errs[seller.FieldBaseSalary])
}
