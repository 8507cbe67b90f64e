package jobtype

import (
	"log/slog"

	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type RepositoryAPI = resource.Repository[jobtypeDatamodel.JobType]

type Service = resource.Service[jobtypeDatamodel.JobType, CreateJobTypeDTO, UpdateJobTypeDTO]

func NewService(repo RepositoryAPI, publisher resource.Publisher, logger *slog.Logger) *Service {
	return resource.NewService[jobtypeDatamodel.JobType, CreateJobTypeDTO, UpdateJobTypeDTO](Descriptor, repo, publisher, logger)
}
