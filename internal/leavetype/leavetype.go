package leavetype

import (
	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "LeaveType",
	Plural: "LeaveTypes",
	Path:   "/leave-types",
	Event:  "leave_type",
}

type LeaveTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToResponse(m *leavetypeDatamodel.LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:   m.ID,
		Name: m.Name,
	}
}
