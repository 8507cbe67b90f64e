package companyunit

import (
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "CompanyUnit",
	Plural: "CompanyUnits",
	Path:   "/company-units",
	Event:  "company_unit",
}

type CompanyUnitResponse struct {
	ID       int64   `json:"id"`
	UnitName string  `json:"unit_name"`
	Address  *string `json:"address"`
}

func ToResponse(m *companyunitDatamodel.CompanyUnit) CompanyUnitResponse {
	return CompanyUnitResponse{
		ID:       m.ID,
		UnitName: m.UnitName,
		Address:  m.Address,
	}
}
