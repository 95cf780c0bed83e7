package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"sellerdesk-backend/internal/domains/seller"
)

type SellerFormSuite struct {
	suite.Suite
	ctx     context.Context
	w       *formWidgets
	store   *sellerStore
	catalog *catalog
	alerter *fakeAlerter
	form    *SellerForm
}

func TestSellerFormSuite(t *testing.T) {
	suite.Run(t, new(SellerFormSuite))
}

func (s *SellerFormSuite) SetupTest() {
	s.ctx = context.Background()
	s.w = newFormWidgets()
	s.store = &sellerStore{}
	s.catalog = seedCatalog()
	s.alerter = &fakeAlerter{}

	s.form = NewSellerForm(s.w.widgets(), seller.NewFormValidator(time.UTC), NewBindingAdapter(time.UTC), s.alerter)
	s.form.SetSeller(&seller.Seller{})
	s.form.SetServices(s.store, s.catalog)
	s.Require().NoError(s.form.LoadAssociatedObjects(s.ctx))
	s.form.UpdateFormData()
}

func (s *SellerFormSuite) TestOpen() {
	s.Equal(StateEditing, s.form.State())
	s.Len(s.w.dept.options, 3)
	s.Require().NotNil(s.w.dept.selected)
	s.Equal("Books", s.w.dept.selected.Name)
}

func (s *SellerFormSuite) TestDepartmentsFetchedOnEveryLoad() {
	s.Require().NoError(s.form.LoadAssociatedObjects(s.ctx))
	s.Equal(2, s.catalog.calls)
}

func (s *SellerFormSuite) TestSaveValid() {
	var order []string
	s.form.Subscribe(ListenerFunc(func() { order = append(order, "first") }))
	s.form.Subscribe(ListenerFunc(func() { order = append(order, "second") }))
	s.w.fill()
	s.w.nameErr.text = "stale"

	s.Require().NoError(s.form.Save(s.ctx))

	s.Equal([]string{"first", "second"}, order)
	s.Equal(StateClosed, s.form.State())
	s.Empty(s.w.nameErr.text)
	s.Require().Len(s.store.saved, 1)

	saved := s.form.Seller()
	s.Require().NotNil(saved.ID)
	s.Equal(1, *saved.ID)
	s.Equal("Ana", saved.Name)
	s.Equal("Books", saved.Department.Name)
	s.Empty(s.alerter.titles)
}

func (s *SellerFormSuite) TestSaveInvalid() {
	notified := 0
	s.form.Subscribe(ListenerFunc(func() { notified++ }))
	s.w.fill()
	s.w.email.text = "  "
	s.w.birth.date = nil

	err := s.form.Save(s.ctx)

	var ve *seller.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Len(ve.Errors, 2)
	s.Equal(seller.MsgFieldEmpty, s.w.emailErr.text)
	s.Equal(seller.MsgFieldEmpty, s.w.birthErr.text)
	s.Empty(s.w.nameErr.text)
	s.Empty(s.w.salaryErr.text)

	s.Equal(StateEditing, s.form.State())
	s.Empty(s.store.saved)
	s.Zero(notified)
}

func (s *SellerFormSuite) TestSaveStorageFailure() {
	notified := 0
	s.form.Subscribe(ListenerFunc(func() { notified++ }))
	s.store.err = errors.New("disk full")
	s.w.fill()

	err := s.form.Save(s.ctx)

	s.True(seller.IsStorageError(err))
	s.Equal([]string{"Error saving object"}, s.alerter.titles)
	s.Equal(StateEditing, s.form.State())
	s.Zero(notified)
}

func (s *SellerFormSuite) TestSaveAfterFixingErrors() {
	s.Require().Error(s.form.Save(s.ctx))
	s.Equal(seller.MsgFieldEmpty, s.w.nameErr.text)

	s.w.fill()
	s.Require().NoError(s.form.Save(s.ctx))
	s.Empty(s.w.nameErr.text)
}

func (s *SellerFormSuite) TestCancel() {
	s.form.Cancel()
	s.Equal(StateClosed, s.form.State())

	s.w.fill()
	s.ErrorIs(s.form.Save(s.ctx), ErrFormClosed)
	s.Empty(s.store.saved)
}

func (s *SellerFormSuite) TestSaveWithoutDepartments() {
	s.catalog.items = nil
	s.Require().NoError(s.form.LoadAssociatedObjects(s.ctx))
	s.form.UpdateFormData()
	s.w.fill()

	s.Require().NoError(s.form.Save(s.ctx))
	s.Nil(s.form.Seller().Department)
}

func TestSellerForm_MissingCollaboratorsPanic(t *testing.T) {
	w := newFormWidgets()

	t.Run("update without seller", func(t *testing.T) {
		f := NewSellerForm(w.widgets(), nil, nil, nil)
		assert.Panics(t, func() { f.UpdateFormData() })
	})

	t.Run("load without department service", func(t *testing.T) {
		f := NewSellerForm(w.widgets(), nil, nil, nil)
		assert.Panics(t, func() { _ = f.LoadAssociatedObjects(context.Background()) })
	})

	t.Run("save without seller service", func(t *testing.T) {
		f := NewSellerForm(w.widgets(), nil, nil, nil)
		f.SetSeller(&seller.Seller{})
		assert.Panics(t, func() { _ = f.Save(context.Background()) })
	})

	t.Run("save without seller", func(t *testing.T) {
		f := NewSellerForm(w.widgets(), nil, nil, nil)
		f.SetServices(&sellerStore{}, seedCatalog())
		assert.Panics(t, func() { _ = f.Save(context.Background()) })
	})
}

func TestSellerForm_NilAlerterOnlyLogs(t *testing.T) {
	w := newFormWidgets()
	w.fill()
	f := NewSellerForm(w.widgets(), nil, nil, nil)
	f.SetSeller(&seller.Seller{})
	f.SetServices(&sellerStore{err: errors.New("boom")}, seedCatalog())

	require.NotPanics(t, func() {
		err := f.Save(context.Background())
		assert.True(t, seller.IsStorageError(err))
	})
}
