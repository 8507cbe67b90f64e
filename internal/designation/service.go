package designation

import (
	"log/slog"

	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[designationDatamodel.Designation]

type Service = resource.Service[designationDatamodel.Designation, CreateDesignationDTO, UpdateDesignationDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[designationDatamodel.Designation, CreateDesignationDTO, UpdateDesignationDTO](Descriptor, repo, publisher, logger)
}
