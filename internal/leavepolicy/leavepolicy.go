package leavepolicy

import (
	"gorm.io/datatypes"

	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "LeavePolicy",
	Plural: "LeavePolicies",
	Path:   "/leave-policies",
	Event:  "leave_policy",
}

type LeavePolicyResponse struct {
	ID         int64             `json:"id"`
	PolicyName string            `json:"policy_name"`
	Details    datatypes.JSONMap `json:"details"`
}

func ToResponse(m *leavepolicyDatamodel.LeavePolicy) LeavePolicyResponse {
	return LeavePolicyResponse{
		ID:         m.ID,
		PolicyName: m.PolicyName,
		Details:    m.Details,
	}
}
