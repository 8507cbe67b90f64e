package employee

import (
	"log/slog"

	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[employeeDatamodel.Employee]

type Service = resource.Service[employeeDatamodel.Employee, CreateEmployeeDTO, UpdateEmployeeDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[employeeDatamodel.Employee, CreateEmployeeDTO, UpdateEmployeeDTO](Descriptor, repo, publisher, logger)
}
