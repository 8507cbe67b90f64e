package leave

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "Leave",
	Plural: "Leaves",
	Path:   "/leaves",
	Event:  "leave",
}

type LeaveResponse struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employee_id"`
	LeaveType    string     `json:"leave_type"`
	StartDate    dates.Date `json:"start_date"`
	EndDate      dates.Date `json:"end_date"`
	Reason       *string    `json:"reason"`
	Status       string     `json:"status"`
	ApprovedByID *int64     `json:"approved_by_id"`
}

func ToResponse(l *leaveDatamodel.Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		LeaveType:    l.LeaveType,
		StartDate:    dates.Of(l.StartDate),
		EndDate:      dates.Of(l.EndDate),
		Reason:       l.Reason,
		Status:       l.Status,
		ApprovedByID: l.ApprovedByID,
	}
}
