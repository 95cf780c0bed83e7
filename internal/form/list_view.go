package form

import (
	"context"

	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
)

// DepartmentList shows the department catalog in a table.
type DepartmentList struct {
	service department.Service
	table   Table[department.Department]
}

// NewDepartmentList creates a list bound to table.
func NewDepartmentList(table Table[department.Department]) *DepartmentList {
	return &DepartmentList{table: table}
}

// SetDepartmentService wires the catalog.
func (l *DepartmentList) SetDepartmentService(service department.Service) {
	l.service = service
}

// UpdateTableView reloads the rows. Panics if no service was set.
func (l *DepartmentList) UpdateTableView(ctx context.Context) error {
	if l.service == nil {
		panic("form: department service was nil")
	}
	items, err := l.service.FindAll(ctx)
	if err != nil {
		return err
	}
	l.table.SetRows(items)
	return nil
}

// SellerList shows stored sellers and refreshes itself when a form saves.
type SellerList struct {
	service seller.Service
	table   Table[*seller.Seller]
}

// NewSellerList creates a list bound to table.
func NewSellerList(service seller.Service, table Table[*seller.Seller]) *SellerList {
	return &SellerList{service: service, table: table}
}

// UpdateTableView reloads the rows. Panics if no service was set.
func (l *SellerList) UpdateTableView(ctx context.Context) error {
	if l.service == nil {
		panic("form: seller service was nil")
	}
	items, err := l.service.FindAll(ctx)
	if err != nil {
		return err
	}
	l.table.SetRows(items)
	return nil
}

// OnDataChanged implements DataChangeListener.
func (l *SellerList) OnDataChanged() {
	if err := l.UpdateTableView(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to refresh seller list")
	}
}
