package jobtype

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
)

type CreateJobTypeDTO struct {
	TypeName string `json:"type_name" validate:"required,notblank,max=100"`
}

func (d CreateJobTypeDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateJobTypeDTO) ToModel() *jobtypeDatamodel.JobType {
	return &jobtypeDatamodel.JobType{TypeName: d.TypeName}
}

type UpdateJobTypeDTO struct {
	TypeName patch.Field[string] `json:"type_name"`
}

func (d UpdateJobTypeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("type_name", d.TypeName).NotNull().NotBlank().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateJobTypeDTO) ApplyTo(m *jobtypeDatamodel.JobType) error {
	d.TypeName.ApplyTo(&m.TypeName)
	return nil
}
