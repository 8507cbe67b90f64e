package leavepolicy

import (
	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[leavepolicyDatamodel.LeavePolicy, CreateLeavePolicyDTO, UpdateLeavePolicyDTO]

type Handler = resource.Handler[leavepolicyDatamodel.LeavePolicy, CreateLeavePolicyDTO, UpdateLeavePolicyDTO, LeavePolicyResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[leavepolicyDatamodel.LeavePolicy, CreateLeavePolicyDTO, UpdateLeavePolicyDTO, LeavePolicyResponse](baseHandler, service, ToResponse)
}
