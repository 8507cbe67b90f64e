package department

import (
	"log/slog"

	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[departmentDatamodel.Department]

type Service = resource.Service[departmentDatamodel.Department, CreateDepartmentDTO, UpdateDepartmentDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[departmentDatamodel.Department, CreateDepartmentDTO, UpdateDepartmentDTO](Descriptor, repo, publisher, logger)
}
