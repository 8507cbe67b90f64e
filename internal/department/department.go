package department

import (
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "Department",
	Plural: "Departments",
	Path:   "/departments",
	Event:  "department",
}

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToResponse(m *departmentDatamodel.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   m.ID,
		Name: m.Name,
	}
}
