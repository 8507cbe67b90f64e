package leave

import (
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[leaveDatamodel.Leave, CreateLeaveDTO, UpdateLeaveDTO]

type Handler = resource.Handler[leaveDatamodel.Leave, CreateLeaveDTO, UpdateLeaveDTO, LeaveResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[leaveDatamodel.Leave, CreateLeaveDTO, UpdateLeaveDTO, LeaveResponse](baseHandler, service, ToResponse)
}
