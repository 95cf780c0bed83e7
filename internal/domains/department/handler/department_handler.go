package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sellerdesk-backend/internal/domains/department"
	"sellerdesk-backend/internal/shared/response"
)

// DepartmentHandler handles HTTP requests for the department domain
type DepartmentHandler struct {
	service department.Service
}

// NewDepartmentHandler creates a new department handler instance
func NewDepartmentHandler(service department.Service) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
	}
}

// ListDepartments handles GET /departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	items, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		status, message, code := department.MapErrorToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	results := make([]*department.DepartmentResponse, len(items))
	for i, d := range items {
		results[i] = d.ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, results, &response.Meta{Total: len(results)})
}

// GetDepartment handles GET /departments/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	idStr := c.Param("id")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		status, message, code := department.MapErrorToHTTP(department.NewInvalidDepartmentID(idStr))
		response.ErrorResponse(c, status, code, message)
		return
	}

	d, err := h.service.GetDepartment(c.Request.Context(), id)
	if err != nil {
		status, message, code := department.MapErrorToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, d.ToResponse())
}
