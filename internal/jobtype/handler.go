package jobtype

import (
	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[jobtypeDatamodel.JobType, CreateJobTypeDTO, UpdateJobTypeDTO]

type Handler = resource.Handler[jobtypeDatamodel.JobType, CreateJobTypeDTO, UpdateJobTypeDTO, JobTypeResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[jobtypeDatamodel.JobType, CreateJobTypeDTO, UpdateJobTypeDTO, JobTypeResponse](baseHandler, service, ToResponse)
}
