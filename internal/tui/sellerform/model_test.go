package sellerform

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	departmentRepo "sellerdesk-backend/internal/domains/department/repository"
	departmentService "sellerdesk-backend/internal/domains/department/service"
	"sellerdesk-backend/internal/domains/seller"
	sellerRepo "sellerdesk-backend/internal/domains/seller/repository"
	sellerService "sellerdesk-backend/internal/domains/seller/service"
	"sellerdesk-backend/internal/form"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, listener form.DataChangeListener) *Model {
	t.Helper()
	return NewModel(context.Background(), Config{
		Sellers:     sellerService.NewSellerService(sellerRepo.NewMemoryRepository()),
		Departments: departmentService.NewDepartmentService(departmentRepo.NewMemoryRepository()),
		Location:    time.UTC,
		Listener:    listener,
	})
}

func TestModel_CreateSeller(t *testing.T) {
	notified := 0
	m := newTestModel(t, form.ListenerFunc(func() { notified++ }))
	assert.Equal(t, screenList, m.screen)

	m.Update(runes("n"))
	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, inputName, m.focus)
	assert.Equal(t, "Books", m.choice.Selected().Name)

	m.inputs[inputName].SetValue("Ana")
	m.inputs[inputEmail].SetValue("ana@x.com")
	m.inputs[inputBirthDate].SetValue("17/05/1990")
	m.inputs[inputBaseSalary].SetValue("2500")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, 1, notified)
	require.Len(t, m.sellerRows.rows, 1)
	s := m.sellerRows.rows[0]
	assert.Equal(t, "Ana", s.Name)
	assert.Equal(t, "Books", s.Department.Name)
	assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), *s.BirthDate)
}

func TestModel_ValidationKeepsFormOpen(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("n"))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, seller.MsgFieldEmpty, m.errors[seller.FieldName].Text())
	assert.Equal(t, seller.MsgFieldEmpty, m.errors[seller.FieldBirthDate].Text())
	assert.Contains(t, m.View(), seller.MsgFieldEmpty)
	assert.Empty(t, m.sellerRows.rows)
}

func TestModel_SalaryRejectsLetters(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("n"))
	m.setFocus(inputBaseSalary)

	m.Update(runes("abc"))
	assert.Empty(t, m.inputs[inputBaseSalary].Value())

	for _, r := range "12x.5e0" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "12.50", m.inputs[inputBaseSalary].Value())

	m.Update(runes("."))
	assert.Equal(t, "12.50", m.inputs[inputBaseSalary].Value())
}

func TestModel_BirthDateTakesDigitsAndSlash(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("n"))
	m.setFocus(inputBirthDate)

	for _, r := range "1990-05-17" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "19900517", m.inputs[inputBirthDate].Value())
}

func TestModel_UnparsableBirthDateShowsFormat(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("n"))
	m.inputs[inputName].SetValue("Ana")
	m.inputs[inputEmail].SetValue("ana@x.com")
	m.inputs[inputBirthDate].SetValue("31/02/1990")
	m.inputs[inputBaseSalary].SetValue("2500")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, screenForm, m.screen)
	assert.Contains(t, m.status, "dd/mm/yyyy")
	assert.Empty(t, m.sellerRows.rows)

	// an empty date keeps the generic status
	m.inputs[inputBirthDate].SetValue("")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "Please fix the highlighted fields", m.status)
}

func TestModel_FocusSkipsIDAndCyclesDepartment(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runes("n"))

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusCancel, m.focus)
	for m.focus != focusDepartment {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Computers", m.choice.Selected().Name)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Books", m.choice.Selected().Name)

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.NotEqual(t, inputID, m.focus)
	}
}

func TestModel_CancelAndEdit(t *testing.T) {
	m := newTestModel(t, nil)
	id := 5
	require.NoError(t, m.cfg.Sellers.SaveOrUpdate(context.Background(), &seller.Seller{
		ID:         &id,
		Name:       "Bob",
		Email:      "bob@x.com",
		BaseSalary: seller.ParseSalary("10"),
	}))
	m.sellerList.OnDataChanged()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, "5", m.inputs[inputID].Value())
	assert.Equal(t, "10.00", m.inputs[inputBaseSalary].Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, form.StateClosed, m.form.State())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
