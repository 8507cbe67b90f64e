package leavepolicy

import (
	"log/slog"

	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[leavepolicyDatamodel.LeavePolicy]

type Service = resource.Service[leavepolicyDatamodel.LeavePolicy, CreateLeavePolicyDTO, UpdateLeavePolicyDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[leavepolicyDatamodel.LeavePolicy, CreateLeavePolicyDTO, UpdateLeavePolicyDTO](Descriptor, repo, publisher, logger)
}
