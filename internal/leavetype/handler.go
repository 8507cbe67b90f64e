package leavetype

import (
	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[leavetypeDatamodel.LeaveType, CreateLeaveTypeDTO, UpdateLeaveTypeDTO]

type Handler = resource.Handler[leavetypeDatamodel.LeaveType, CreateLeaveTypeDTO, UpdateLeaveTypeDTO, LeaveTypeResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[leavetypeDatamodel.LeaveType, CreateLeaveTypeDTO, UpdateLeaveTypeDTO, LeaveTypeResponse](baseHandler, service, ToResponse)
}
