package sellerform

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
)

// DateLayout is how birth dates are typed into the form.
const DateLayout = "02/01/2006"

var (
	salaryPattern = regexp.MustCompile(`^\d*(\.\d*)?$`)
	datePattern   = regexp.MustCompile(`^[\d/]*$`)

	errNotDecimal = errors.New("salary must be a decimal number")
	errNotDate    = errors.New("birth date takes digits and '/'")
)

// salaryFilter accepts text that is, or can still grow into, a decimal
// number such as 2500 or 1234.50.
func salaryFilter(s string) error {
	if !salaryPattern.MatchString(s) {
		return errNotDecimal
	}
	return nil
}

// dateFilter accepts the characters of a dd/mm/yyyy date.
func dateFilter(s string) error {
	if !datePattern.MatchString(s) {
		return errNotDate
	}
	return nil
}

// textWidget exposes a text input as a form.TextField.
type textWidget struct {
	input *textinput.Model
}

func (w textWidget) Text() string { return w.input.Value() }
func (w textWidget) SetText(s string) { w.input.SetValue(s) }

// dateWidget is a text input holding a dd/MM/yyyy date.
type dateWidget struct {
	input *textinput.Model
	loc   *time.Location
}

// Date returns nil when the text is empty or not a valid date.
func (w dateWidget) Date() *time.Time {
	s := strings.TrimSpace(w.input.Value())
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, w.loc)
	if err != nil {
		return nil
	}
	return &t
}

func (w dateWidget) SetDate(t *time.Time) {
	if t == nil {
		w.input.SetValue("")
		return
	}
	w.input.SetValue(t.In(w.loc).Format(DateLayout))
}

// label holds an error message.
type label struct {
	text string
}

func (l *label) SetText(s string) { l.text = s }
func (l *label) Text() string { return l.text }

// choiceWidget cycles through department options with left/right.
type choiceWidget struct {
	options []department.Department
	index   int
}

func newChoiceWidget() *choiceWidget {
	return &choiceWidget{index: -1}
}

func (c *choiceWidget) Options() []department.Department {
	return c.options
}

func (c *choiceWidget) SetOptions(options []department.Department) {
	c.options = options
	c.index = -1
}

func (c *choiceWidget) Selected() *department.Department {
	if c.index < 0 || c.index >= len(c.options) {
		return nil
	}
	d := c.options[c.index]
	return &d
}

// Select picks the exact option, falling back to the first option with the
// same ID.
func (c *choiceWidget) Select(d *department.Department) {
	c.index = -1
	if d == nil {
		return
	}
	for i, o := range c.options {
		if o.Same(*d) {
			c.index = i
			return
		}
	}
	for i, o := range c.options {
		if o.ID == d.ID {
			c.index = i
			return
		}
	}
}

func (c *choiceWidget) Next() {
	if len(c.options) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.options)
}

func (c *choiceWidget) Prev() {
	if len(c.options) == 0 {
		return
	}
	if c.index <= 0 {
		c.index = len(c.options) - 1
		return
	}
	c.index--
}

func (c *choiceWidget) View() string {
	if d := c.Selected(); d != nil {
		return "< " + d.Name + " >"
	}
	if len(c.options) == 0 {
		return "(no departments)"
	}
	return "< none >"
}

// alertBox keeps the last blocking notification until dismissed.
type alertBox struct {
	title   string
	content string
}

func (a *alertBox) Alert(title, header, content string) {
	a.title = title
	a.content = content
	if header != "" {
		a.content = header + ": " + content
	}
}

func (a *alertBox) Clear() {
	a.title, a.content = "", ""
}

func (a *alertBox) Active() bool {
	return a.title != ""
}

// sellerTable receives seller rows from form.SellerList.
type sellerTable struct {
	rows []*seller.Seller
}

func (t *sellerTable) SetRows(rows []*seller.Seller) { t.rows = rows }

// departmentTable receives rows from form.DepartmentList.
type departmentTable struct {
	rows []department.Department
}

func (t *departmentTable) SetRows(rows []department.Department) { t.rows = rows }
