package employee

import (
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[employeeDatamodel.Employee, CreateEmployeeDTO, UpdateEmployeeDTO]

type Handler = resource.Handler[employeeDatamodel.Employee, CreateEmployeeDTO, UpdateEmployeeDTO, EmployeeResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[employeeDatamodel.Employee, CreateEmployeeDTO, UpdateEmployeeDTO, EmployeeResponse](baseHandler, service, ToResponse)
}
