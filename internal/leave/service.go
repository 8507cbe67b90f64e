package leave

import (
	"log/slog"

	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[leaveDatamodel.Leave]

type Service = resource.Service[leaveDatamodel.Leave, CreateLeaveDTO, UpdateLeaveDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[leaveDatamodel.Leave, CreateLeaveDTO, UpdateLeaveDTO](Descriptor, repo, publisher, logger)
}
