// Package form binds seller records to UI widgets.
//
// Widgets are small capability interfaces (get/set text, date and
// selection) so the same controller drives the terminal form, tests, or any
// other toolkit that can implement them. A SellerForm has two states:
// Editing, where errors are shown inline, and Closed, reached after a
// successful save or a cancel.
package form
