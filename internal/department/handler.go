package department

import (
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[departmentDatamodel.Department, CreateDepartmentDTO, UpdateDepartmentDTO]

type Handler = resource.Handler[departmentDatamodel.Department, CreateDepartmentDTO, UpdateDepartmentDTO, DepartmentResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[departmentDatamodel.Department, CreateDepartmentDTO, UpdateDepartmentDTO, DepartmentResponse](baseHandler, service, ToResponse)
}
