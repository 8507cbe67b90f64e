package department

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
)

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

func (d CreateDepartmentDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateDepartmentDTO) ToModel() *departmentDatamodel.Department {
	return &departmentDatamodel.Department{Name: d.Name}
}

type UpdateDepartmentDTO struct {
	Name patch.Field[string] `json:"name"`
}

func (d UpdateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).NotNull().NotBlank().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateDepartmentDTO) ApplyTo(m *departmentDatamodel.Department) error {
	d.Name.ApplyTo(&m.Name)
	return nil
}
