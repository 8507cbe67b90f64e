package companyunit

import (
	"log/slog"

	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[companyunitDatamodel.CompanyUnit]

type Service = resource.Service[companyunitDatamodel.CompanyUnit, CreateCompanyUnitDTO, UpdateCompanyUnitDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[companyunitDatamodel.CompanyUnit, CreateCompanyUnitDTO, UpdateCompanyUnitDTO](Descriptor, repo, publisher, logger)
}
