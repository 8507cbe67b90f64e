package leavetype

import (
	"log/slog"

	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[leavetypeDatamodel.LeaveType]

type Service = resource.Service[leavetypeDatamodel.LeaveType, CreateLeaveTypeDTO, UpdateLeaveTypeDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[leavetypeDatamodel.LeaveType, CreateLeaveTypeDTO, UpdateLeaveTypeDTO](Descriptor, repo, publisher, logger)
}
