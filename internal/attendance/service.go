package attendance

import (
	"log/slog"

	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[attendanceDatamodel.Attendance]

type Service = resource.Service[attendanceDatamodel.Attendance, CreateAttendanceDTO, UpdateAttendanceDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[attendanceDatamodel.Attendance, CreateAttendanceDTO, UpdateAttendanceDTO](Descriptor, repo, publisher, logger)
}
