package leavepolicy

import (
	"gorm.io/datatypes"

	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
)

// CreateLeavePolicyDTO carries the policy rules as a free-form object, e.g.
// {"annual": 20, "carry_over": true}.
type CreateLeavePolicyDTO struct {
	PolicyName string            `json:"policy_name" validate:"required,notblank,max=150"`
	Details    datatypes.JSONMap `json:"details" validate:"required"`
}

func (d CreateLeavePolicyDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateLeavePolicyDTO) ToModel() *leavepolicyDatamodel.LeavePolicy {
	return &leavepolicyDatamodel.LeavePolicy{
		PolicyName: d.PolicyName,
		Details:    d.Details,
	}
}

type UpdateLeavePolicyDTO struct {
	PolicyName patch.Field[string]            `json:"policy_name"`
	Details    patch.Field[datatypes.JSONMap] `json:"details"`
}

func (d UpdateLeavePolicyDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("policy_name", d.PolicyName).NotNull().NotBlank().MaxLength(150)
	v.Field("details", d.Details).NotNull()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateLeavePolicyDTO) ApplyTo(m *leavepolicyDatamodel.LeavePolicy) error {
	d.PolicyName.ApplyTo(&m.PolicyName)
	d.Details.ApplyTo(&m.Details)
	return nil
}
