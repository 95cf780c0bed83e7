package sellerform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
	"sellerdesk-backend/internal/form"
)

type screen int

const (
	screenList screen = iota
	screenForm
)

// Text inputs, in focus order.
const (
	inputID = iota
	inputName
	inputEmail
	inputBirthDate
	inputBaseSalary
	inputCount
)

// Focus positions after the text inputs.
const (
	focusDepartment = inputCount + iota
	focusSave
	focusCancel
)

// Config wires the terminal form to the application services.
type Config struct {
	Sellers     seller.Service
	Departments department.Service
	Validator   *seller.FormValidator
	Location    *time.Location
	// Listener is notified after every save, in addition to the seller list.
	Listener form.DataChangeListener
	// Open, when set, starts on the form editing this seller.
	Open *seller.Seller
}

// Model is the bubbletea model: a seller list and a seller form.
type Model struct {
	ctx context.Context
	cfg Config

	binder *form.BindingAdapter
	screen screen

	sellerRows *sellerTable
	sellerList *form.SellerList
	cursor     int
	deptRows   *departmentTable
	deptList   *form.DepartmentList
	showDepts  bool

	inputs [inputCount]textinput.Model
	choice *choiceWidget
	errors map[string]*label
	alert  *alertBox
	focus  int
	form   *form.SellerForm

	status string
	err    error
}

// NewModel creates the model and loads the seller list.
func NewModel(ctx context.Context, cfg Config) *Model {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Validator == nil {
		cfg.Validator = seller.NewFormValidator(cfg.Location)
	}

	m := &Model{
		ctx:        ctx,
		cfg:        cfg,
		binder:     form.NewBindingAdapter(cfg.Location),
		sellerRows: &sellerTable{},
		deptRows:   &departmentTable{},
		choice:     newChoiceWidget(),
		alert:      &alertBox{},
		errors: map[string]*label{
			seller.FieldName:       {},
			seller.FieldEmail:      {},
			seller.FieldBirthDate:  {},
			seller.FieldBaseSalary: {},
		},
	}
	m.sellerList = form.NewSellerList(cfg.Sellers, m.sellerRows)
	m.deptList = form.NewDepartmentList(m.deptRows)
	m.deptList.SetDepartmentService(cfg.Departments)

	placeholders := [inputCount]string{"(new)", "Name", "name@example.com", "dd/mm/yyyy", "0.00"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[inputName].CharLimit = seller.MaxNameLength
	m.inputs[inputBirthDate].CharLimit = len(DateLayout)
	m.inputs[inputBirthDate].Validate = dateFilter
	m.inputs[inputBaseSalary].Validate = salaryFilter

	if err := m.sellerList.UpdateTableView(ctx); err != nil {
		m.err = err
	}
	if cfg.Open != nil {
		m.openForm(cfg.Open)
	}
	return m
}

func (m *Model) widgets() form.SellerWidgets {
	return form.SellerWidgets{
		ID:              textWidget{input: &m.inputs[inputID]},
		Name:            textWidget{input: &m.inputs[inputName]},
		Email:           textWidget{input: &m.inputs[inputEmail]},
		BirthDate:       dateWidget{input: &m.inputs[inputBirthDate], loc: m.cfg.Location},
		BaseSalary:      textWidget{input: &m.inputs[inputBaseSalary]},
		Department:      m.choice,
		NameError:       m.errors[seller.FieldName],
		EmailError:      m.errors[seller.FieldEmail],
		BirthDateError:  m.errors[seller.FieldBirthDate],
		BaseSalaryError: m.errors[seller.FieldBaseSalary],
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm && m.focus < inputCount {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.screen == screenForm {
		return m.updateForm(key)
	}
	return m.updateList(key)
}

func (m *Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sellerRows.rows)-1 {
			m.cursor++
		}
	case "n":
		return m, m.openForm(&seller.Seller{})
	case "enter", "e":
		if len(m.sellerRows.rows) > 0 {
			return m, m.openForm(m.sellerRows.rows[m.cursor].Clone())
		}
	case "d":
		m.showDepts = !m.showDepts
		if m.showDepts {
			if err := m.deptList.UpdateTableView(m.ctx); err != nil {
				m.err = err
			}
		}
	case "x":
		if len(m.sellerRows.rows) > 0 {
			m.remove(m.sellerRows.rows[m.cursor])
		}
	}
	return m, nil
}

func (m *Model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.alert.Active() {
		// any key dismisses the alert
		m.alert.Clear()
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.form.Cancel()
		m.closeForm("Edit cancelled")
		return m, nil
	case "ctrl+s":
		return m, m.save()
	case "tab", "down":
		return m, m.setFocus(m.nextFocus(1))
	case "shift+tab", "up":
		return m, m.setFocus(m.nextFocus(-1))
	case "left":
		if m.focus == focusDepartment {
			m.choice.Prev()
			return m, nil
		}
	case "right":
		if m.focus == focusDepartment {
			m.choice.Next()
			return m, nil
		}
	case "enter":
		switch m.focus {
		case focusSave:
			return m, m.save()
		case focusCancel:
			m.form.Cancel()
			m.closeForm("Edit cancelled")
			return m, nil
		default:
			return m, m.setFocus(m.nextFocus(1))
		}
	}

	if m.focus < inputCount {
		return m, m.updateInput(key)
	}
	return m, nil
}

// updateInput forwards key to the focused input and drops edits its
// filter rejects.
func (m *Model) updateInput(key tea.KeyMsg) tea.Cmd {
	in := &m.inputs[m.focus]
	prev := in.Value()

	var cmd tea.Cmd
	*in, cmd = in.Update(key)
	if in.Validate != nil && in.Validate(in.Value()) != nil {
		in.SetValue(prev)
	}
	return cmd
}

// openForm builds a fresh SellerForm for s. Departments are fetched again
// on every open.
func (m *Model) openForm(s *seller.Seller) tea.Cmd {
	for _, l := range m.errors {
		l.SetText("")
	}
	m.alert.Clear()
	m.status = ""
	m.err = nil

	f := form.NewSellerForm(m.widgets(), m.cfg.Validator, m.binder, m.alert)
	f.SetSeller(s)
	f.SetServices(m.cfg.Sellers, m.cfg.Departments)
	f.Subscribe(m.sellerList)
	if m.cfg.Listener != nil {
		f.Subscribe(m.cfg.Listener)
	}

	if err := f.LoadAssociatedObjects(m.ctx); err != nil {
		m.err = err
	}
	f.UpdateFormData()

	m.form = f
	m.screen = screenForm
	return m.setFocus(inputName)
}

func (m *Model) save() tea.Cmd {
	err := m.form.Save(m.ctx)
	switch {
	case err == nil:
		m.closeForm(fmt.Sprintf("Seller %d saved", *m.form.Seller().ID))
	case seller.IsValidationError(err):
		m.status = "Please fix the highlighted fields"
		if m.errors[seller.FieldBirthDate].Text() != "" && strings.TrimSpace(m.inputs[inputBirthDate].Value()) != "" {
			// text is there but is not a calendar date
			m.status = "Birth date must be a valid date as dd/mm/yyyy"
		}
	case errors.Is(err, form.ErrFormClosed):
		m.closeForm("")
	default:
		// storage errors are shown by the alert box
		m.status = ""
	}
	return nil
}

func (m *Model) remove(s *seller.Seller) {
	if err := m.cfg.Sellers.Remove(m.ctx, *s.ID); err != nil {
		m.err = err
		return
	}
	m.sellerList.OnDataChanged()
	if m.cfg.Listener != nil {
		m.cfg.Listener.OnDataChanged()
	}
	if m.cursor >= len(m.sellerRows.rows) && m.cursor > 0 {
		m.cursor--
	}
	m.status = fmt.Sprintf("Seller %d removed", *s.ID)
}

func (m *Model) closeForm(status string) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.screen = screenList
	m.status = status
}

func (m *Model) nextFocus(step int) int {
	n := focusCancel + 1
	f := m.focus
	for {
		f = (f + step + n) % n
		if f != inputID {
			return f
		}
	}
}

func (m *Model) setFocus(f int) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	if m.screen == screenForm {
		m.viewForm(&b)
	} else {
		m.viewList(&b)
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m *Model) viewList(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Sellers") + "\n")

	if len(m.sellerRows.rows) == 0 {
		b.WriteString(labelStyle.Render("(no sellers yet)") + "\n")
	}
	for i, s := range m.sellerRows.rows {
		dep := ""
		if s.Department != nil {
			dep = s.Department.Name
		}
		line := fmt.Sprintf("%4d  %-30s %-30s %s", *s.ID, s.Name, s.Email, dep)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.showDepts {
		b.WriteString("\n" + titleStyle.Render("Departments") + "\n")
		for _, d := range m.deptRows.rows {
			b.WriteString(fmt.Sprintf("  %4d  %s\n", d.ID, d.Name))
		}
	}

	b.WriteString(helpStyle.Render("n new  enter edit  x remove  d departments  q quit") + "\n")
}

func (m *Model) viewForm(b *strings.Builder) {
	title := "New seller"
	if s := m.form.Seller(); s != nil && !s.IsNew() {
		title = fmt.Sprintf("Edit seller %d", *s.ID)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	rows := []struct {
		label string
		focus int
		view  string
		field string
	}{
		{"Id", inputID, m.inputs[inputID].View(), ""},
		{"Name", inputName, m.inputs[inputName].View(), seller.FieldName},
		{"Email", inputEmail, m.inputs[inputEmail].View(), seller.FieldEmail},
		{"Birth date", inputBirthDate, m.inputs[inputBirthDate].View(), seller.FieldBirthDate},
		{"Base salary", inputBaseSalary, m.inputs[inputBaseSalary].View(), seller.FieldBaseSalary},
		{"Department", focusDepartment, m.choice.View(), ""},
	}
	for _, r := range rows {
		lbl := labelStyle.Render(r.label)
		if m.focus == r.focus {
			lbl = focusedLabelStyle.Render(r.label)
		}
		line := lbl + " " + r.view
		if r.field != "" {
			if msg := m.errors[r.field].Text(); msg != "" {
				line += "  " + errorStyle.Render(msg)
			}
		}
		b.WriteString(line + "\n")
	}

	save, cancel := buttonStyle.Render("Save"), buttonStyle.Render("Cancel")
	if m.focus == focusSave {
		save = buttonFocusedStyle.Render("Save")
	}
	if m.focus == focusCancel {
		cancel = buttonFocusedStyle.Render("Cancel")
	}
	b.WriteString("\n" + save + " " + cancel + "\n")

	if m.alert.Active() {
		b.WriteString("\n" + alertStyle.Render(errorStyle.Render(m.alert.title)+"\n"+m.alert.content) + "\n")
	}

	b.WriteString(helpStyle.Render("tab next  ←/→ department  ctrl+s save  esc cancel") + "\n")
}

// Run starts the terminal form and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(NewModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
