package companyunit

import (
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[companyunitDatamodel.CompanyUnit, CreateCompanyUnitDTO, UpdateCompanyUnitDTO]

type Handler = resource.Handler[companyunitDatamodel.CompanyUnit, CreateCompanyUnitDTO, UpdateCompanyUnitDTO, CompanyUnitResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[companyunitDatamodel.CompanyUnit, CreateCompanyUnitDTO, UpdateCompanyUnitDTO, CompanyUnitResponse](baseHandler, service, ToResponse)
}
