package form

import (
	"time"

	"sellerdesk-backend/internal/domains/department"
)

// TextField is an editable single-line text widget.
type TextField interface {
	Text() string
	SetText(string)
}

// Label displays a message, typically a field error.
type Label interface {
	SetText(string)
}

// DateField is a date picker. A nil date means nothing is picked.
type DateField interface {
	Date() *time.Time
	SetDate(*time.Time)
}

// ChoiceField is a department selector showing department names.
type ChoiceField interface {
	Options() []department.Department
	SetOptions([]department.Department)
	// Selected returns nil when nothing is selected.
	Selected() *department.Department
	// Select picks the matching option; nil clears the selection.
	Select(*department.Department)
}

// Table shows a list of rows.
type Table[T any] interface {
	SetRows([]T)
}

// Alerter shows a blocking notification.
type Alerter interface {
	Alert(title, header, content string)
}

// SellerWidgets groups the widgets of a seller form.
type SellerWidgets struct {
	ID         TextField
	Name       TextField
	Email      TextField
	BirthDate  DateField
	BaseSalary TextField
	Department ChoiceField

	NameError       Label
	EmailError      Label
	BirthDateError  Label
	BaseSalaryError Label
}
