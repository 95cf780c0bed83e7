package department

// Department groups sellers. Identity is by ID; the seed catalog keeps a
// duplicated ID on purpose, so two values may share an ID with different names.
type Department struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DepartmentResponse DTO for API response
type DepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts a Department to its API shape
func (d Department) ToResponse() *DepartmentResponse {
	return &DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}

// String is the display name shown by selectors.
func (d Department) String() string {
	return d.Name
}

// Same reports whether both values describe the same catalog entry.
func (d Department) Same(other Department) bool {
	return d.ID == other.ID && d.Name == other.Name
}
