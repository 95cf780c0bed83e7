package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/domains/seller"
	"sellerdesk-backend/internal/form"
	"sellerdesk-backend/internal/shared/response"
)

// SellerHandler handles HTTP requests for the seller domain
type SellerHandler struct {
	service     seller.Service
	departments department.Service
	validator   *seller.FormValidator
	listener    form.DataChangeListener
}

// NewSellerHandler creates a new seller handler instance.
// listener is notified after each successful save and may be nil.
func NewSellerHandler(service seller.Service, departments department.Service, validator *seller.FormValidator, listener form.DataChangeListener) *SellerHandler {
	if validator == nil {
		validator = seller.NewFormValidator(nil)
	}
	return &SellerHandler{
		service:     service,
		departments: departments,
		validator:   validator,
		listener:    listener,
	}
}

// ListSellers handles GET /sellers
func (h *SellerHandler) ListSellers(c *gin.Context) {
	items, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	results := make([]*seller.SellerResponse, len(items))
	for i, s := range items {
		results[i] = s.ToResponse(h.validator.Location())
	}

	response.SuccessWithMeta(c, http.StatusOK, results, &response.Meta{Total: len(results)})
}

// GetSeller handles GET /sellers/:id
func (h *SellerHandler) GetSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	s, err := h.service.GetSeller(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, s.ToResponse(h.validator.Location()))
}

// CreateSeller handles POST /sellers
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	h.submit(c, "", http.StatusCreated)
}

// UpdateSeller handles PUT /sellers/:id
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.GetSeller(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	h.submit(c, strconv.Itoa(id), http.StatusOK)
}

// DeleteSeller handles DELETE /sellers/:id
func (h *SellerHandler) DeleteSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	h.notify()
	c.Status(http.StatusNoContent)
}

// submit runs the form pipeline: validate, save, notify.
func (h *SellerHandler) submit(c *gin.Context, id string, status int) {
	var req seller.SellerFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload", err)
		return
	}

	var selected *department.Department
	if req.DepartmentID != nil {
		d, err := h.resolveDepartment(c, *req.DepartmentID, req.DepartmentName)
		if err != nil {
			status, message, code := department.MapErrorToHTTP(err)
			response.ErrorResponse(c, status, code, message)
			return
		}
		selected = d
	}

	s, err := h.validator.Validate(req.ToRawFields(id, h.validator.Location()), selected)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.service.SaveOrUpdate(c.Request.Context(), s); err != nil {
		h.fail(c, err)
		return
	}

	h.notify()
	response.Success(c, status, s.ToResponse(h.validator.Location()))
}

// resolveDepartment returns the first catalog entry with id, or the entry
// matching both id and name when a name is given.
func (h *SellerHandler) resolveDepartment(c *gin.Context, id int, name string) (*department.Department, error) {
	if name == "" {
		return h.departments.GetDepartment(c.Request.Context(), id)
	}

	items, err := h.departments.FindAll(c.Request.Context())
	if err != nil {
		return nil, err
	}
	want := department.Department{ID: id, Name: name}
	for _, d := range items {
		if d.Same(want) {
			return &d, nil
		}
	}
	return nil, department.NewDepartmentNotFound(id)
}

func (h *SellerHandler) parseID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	if err := validation.Validate(idStr, validation.Required, is.Int); err != nil {
		h.fail(c, seller.NewInvalidSellerID(idStr))
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.fail(c, seller.NewInvalidSellerID(idStr))
		return 0, false
	}
	return id, true
}

func (h *SellerHandler) fail(c *gin.Context, err error) {
	status, message, code, details := seller.MapErrorToHTTP(err)
	if details != nil {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.ErrorResponse(c, status, code, message)
}

func (h *SellerHandler) notify() {
	if h.listener != nil {
		h.listener.OnDataChanged()
	}
}
