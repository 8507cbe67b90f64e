package attendance

import (
	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[attendanceDatamodel.Attendance, CreateAttendanceDTO, UpdateAttendanceDTO]

type Handler = resource.Handler[attendanceDatamodel.Attendance, CreateAttendanceDTO, UpdateAttendanceDTO, AttendanceResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[attendanceDatamodel.Attendance, CreateAttendanceDTO, UpdateAttendanceDTO, AttendanceResponse](baseHandler, service, ToResponse)
}
