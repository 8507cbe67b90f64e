package jobtype

import (
	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "JobType",
	Plural: "JobTypes",
	Path:   "/job-types",
	Event:  "job_type",
}

type JobTypeResponse struct {
	ID       int64  `json:"id"`
	TypeName string `json:"type_name"`
}

func ToResponse(m *jobtypeDatamodel.JobType) JobTypeResponse {
	return JobTypeResponse{
		ID:       m.ID,
		TypeName: m.TypeName,
	}
}
