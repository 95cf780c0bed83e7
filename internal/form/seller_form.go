package form

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
)

// State of a form.
type State int

const (
	StateEditing State = iota
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SellerForm is the controller behind a seller edit form.
//
// The seller and both services must be set before UpdateFormData, Save or
// LoadAssociatedObjects is called; a missing collaborator is an integration
// bug and panics.
type SellerForm struct {
	seller      *seller.Seller
	sellers     seller.Service
	departments department.Service

	validator *seller.FormValidator
	binder    *BindingAdapter
	widgets   SellerWidgets
	alerter   Alerter

	listeners Listeners
	state     State
}

// NewSellerForm creates a form in the Editing state. alerter may be nil, in
// which case storage failures are only logged.
func NewSellerForm(widgets SellerWidgets, validator *seller.FormValidator, binder *BindingAdapter, alerter Alerter) *SellerForm {
	if validator == nil {
		validator = seller.NewFormValidator(nil)
	}
	if binder == nil {
		binder = NewBindingAdapter(nil)
	}
	return &SellerForm{
		widgets:   widgets,
		validator: validator,
		binder:    binder,
		alerter:   alerter,
		state:     StateEditing,
	}
}

// SetSeller sets the record being edited.
func (f *SellerForm) SetSeller(s *seller.Seller) {
	f.seller = s
}

// Seller returns the record being edited. After a successful save it is the
// stored record, with its ID assigned.
func (f *SellerForm) Seller() *seller.Seller {
	return f.seller
}

// SetServices wires the seller store and the department catalog.
func (f *SellerForm) SetServices(sellers seller.Service, departments department.Service) {
	f.sellers = sellers
	f.departments = departments
}

// Subscribe registers l to be notified after each successful save.
func (f *SellerForm) Subscribe(l DataChangeListener) {
	f.listeners.Subscribe(l)
}

// State returns the current form state.
func (f *SellerForm) State() State {
	return f.state
}

// LoadAssociatedObjects fetches the department list into the selector.
// It is fetched fresh every time; nothing is cached.
func (f *SellerForm) LoadAssociatedObjects(ctx context.Context) error {
	if f.departments == nil {
		panic("form: department service was nil")
	}
	items, err := f.departments.FindAll(ctx)
	if err != nil {
		return err
	}
	f.widgets.Department.SetOptions(items)
	return nil
}

// UpdateFormData copies the current seller into the widgets.
func (f *SellerForm) UpdateFormData() {
	if f.seller == nil {
		panic("form: seller was nil")
	}
	f.binder.LoadInto(f.widgets, f.seller)
}

// Save validates the widgets, stores the seller, notifies listeners and
// closes the form. A *seller.ValidationError is shown next to the fields and
// a *seller.StorageError is alerted; in both cases the form stays open and
// the error is returned.
func (f *SellerForm) Save(ctx context.Context) error {
	if f.seller == nil {
		panic("form: seller was nil")
	}
	if f.sellers == nil {
		panic("form: seller service was nil")
	}
	if f.state == StateClosed {
		return ErrFormClosed
	}

	raw := f.binder.ExtractFrom(f.widgets)
	sel, err := f.validator.Validate(raw, f.widgets.Department.Selected())
	if err != nil {
		var ve *seller.ValidationError
		if errors.As(err, &ve) {
			f.binder.DisplayErrors(ve.Errors, f.widgets)
		}
		return err
	}
	f.binder.DisplayErrors(nil, f.widgets)

	if err := f.sellers.SaveOrUpdate(ctx, sel); err != nil {
		f.alert("Error saving object", err)
		return err
	}

	f.seller = sel
	f.listeners.Notify()
	f.state = StateClosed
	return nil
}

// Cancel closes the form without saving.
func (f *SellerForm) Cancel() {
	f.state = StateClosed
}

func (f *SellerForm) alert(title string, err error) {
	log.Error().Err(err).Msg(title)
	if f.alerter != nil {
		f.alerter.Alert(title, "", err.Error())
	}
}

// ErrFormClosed is returned by Save once the form has been closed.
var ErrFormClosed = errors.New("form: closed")
