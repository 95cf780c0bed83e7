package form

import (
	"context"
	"errors"
	"time"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
)

type fakeText struct{ text string }

func (f *fakeText) Text() string { return f.text }
func (f *fakeText) SetText(s string) { f.text = s }

type fakeDate struct{ date *time.Time }

func (f *fakeDate) Date() *time.Time { return f.date }
func (f *fakeDate) SetDate(t *time.Time) { f.date = t }

type fakeChoice struct {
	options  []department.Department
	selected *department.Department
}

func (f *fakeChoice) Options() []department.Department { return f.options }
func (f *fakeChoice) SetOptions(o []department.Department) { f.options = o }
func (f *fakeChoice) Selected() *department.Department { return f.selected }
func (f *fakeChoice) Select(d *department.Department) { f.selected = d }

type fakeAlerter struct {
	titles []string
}

func (a *fakeAlerter) Alert(title, header, content string) {
	a.titles = append(a.titles, title)
}

type fakeTable[T any] struct {
	rows  []T
	calls int
}

func (t *fakeTable[T]) SetRows(rows []T) {
	t.rows = rows
	t.calls++
}

// formWidgets keeps typed handles on the fakes behind SellerWidgets.
type formWidgets struct {
	id, name, email, salary                *fakeText
	birth                                  *fakeDate
	dept                                   *fakeChoice
	nameErr, emailErr, birthErr, salaryErr *fakeText
}

func newFormWidgets() *formWidgets {
	return &formWidgets{
		id:        &fakeText{},
		name:      &fakeText{},
		email:     &fakeText{},
		salary:    &fakeText{},
		birth:     &fakeDate{},
		dept:      &fakeChoice{},
		nameErr:   &fakeText{},
		emailErr:  &fakeText{},
		birthErr:  &fakeText{},
		salaryErr: &fakeText{},
	}
}

func (w *formWidgets) widgets() SellerWidgets {
	return SellerWidgets{
		ID:              w.id,
		Name:            w.name,
		Email:           w.email,
		BirthDate:       w.birth,
		BaseSalary:      w.salary,
		Department:      w.dept,
		NameError:       w.nameErr,
		EmailError:      w.emailErr,
		BirthDateError:  w.birthErr,
		BaseSalaryError: w.salaryErr,
	}
}

// fill types a valid seller into the widgets.
func (w *formWidgets) fill() {
	birth := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	w.name.text = "Ana"
	w.email.text = "ana@x.com"
	w.birth.date = &birth
	w.salary.text = "2500.00"
}

// sellerStore is a seller.Service backed by a slice. Set err to make every
// write fail.
type sellerStore struct {
	saved  []*seller.Seller
	nextID int
	err    error
}

func (s *sellerStore) FindAll(ctx context.Context) ([]*seller.Seller, error) {
	return s.saved, nil
}

func (s *sellerStore) GetSeller(ctx context.Context, id int) (*seller.Seller, error) {
	for _, sel := range s.saved {
		if *sel.ID == id {
			return sel, nil
		}
	}
	return nil, seller.NewSellerNotFound(id)
}

func (s *sellerStore) SaveOrUpdate(ctx context.Context, sel *seller.Seller) error {
	if s.err != nil {
		return seller.NewStorageError("save", s.err)
	}
	if sel.ID == nil {
		s.nextID++
		id := s.nextID
		sel.ID = &id
	}
	s.saved = append(s.saved, sel)
	return nil
}

func (s *sellerStore) Remove(ctx context.Context, id int) error {
	return errors.New("not supported")
}

// catalog is a department.Service over a fixed list.
type catalog struct {
	items []department.Department
	calls int
}

func (c *catalog) FindAll(ctx context.Context) ([]department.Department, error) {
	c.calls++
	out := make([]department.Department, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *catalog) GetDepartment(ctx context.Context, id int) (*department.Department, error) {
	for _, d := range c.items {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, department.NewDepartmentNotFound(id)
}

func seedCatalog() *catalog {
	return &catalog{items: []department.Department{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Computers"},
		{ID: 1, Name: "Eletronics"},
	}}
}
