package companyunit

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
)

type CreateCompanyUnitDTO struct {
	UnitName string  `json:"unit_name" validate:"required,notblank,max=255"`
	Address  *string `json:"address"`
}

func (d CreateCompanyUnitDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateCompanyUnitDTO) ToModel() *companyunitDatamodel.CompanyUnit {
	return &companyunitDatamodel.CompanyUnit{
		UnitName: d.UnitName,
		Address:  d.Address,
	}
}

type UpdateCompanyUnitDTO struct {
	UnitName patch.Field[string] `json:"unit_name"`
	Address  patch.Field[string] `json:"address"`
}

func (d UpdateCompanyUnitDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("unit_name", d.UnitName).NotNull().NotBlank().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateCompanyUnitDTO) ApplyTo(m *companyunitDatamodel.CompanyUnit) error {
	d.UnitName.ApplyTo(&m.UnitName)
	d.Address.ApplyToPtr(&m.Address)
	return nil
}
