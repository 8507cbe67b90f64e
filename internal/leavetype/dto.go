package leavetype

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
)

type CreateLeaveTypeDTO struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

func (d CreateLeaveTypeDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateLeaveTypeDTO) ToModel() *leavetypeDatamodel.LeaveType {
	return &leavetypeDatamodel.LeaveType{Name: d.Name}
}

type UpdateLeaveTypeDTO struct {
	Name patch.Field[string] `json:"name"`
}

func (d UpdateLeaveTypeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", d.Name).NotNull().NotBlank().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateLeaveTypeDTO) ApplyTo(m *leavetypeDatamodel.LeaveType) error {
	d.Name.ApplyTo(&m.Name)
	return nil
}
