package designation

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
)

type CreateDesignationDTO struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}

func (d CreateDesignationDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateDesignationDTO) ToModel() *designationDatamodel.Designation {
	return &designationDatamodel.Designation{Title: d.Title}
}

type UpdateDesignationDTO struct {
	Title patch.Field[string] `json:"title"`
}

func (d UpdateDesignationDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("title", d.Title).NotNull().NotBlank().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateDesignationDTO) ApplyTo(m *designationDatamodel.Designation) error {
	d.Title.ApplyTo(&m.Title)
	return nil
}
