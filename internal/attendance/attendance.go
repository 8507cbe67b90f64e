package attendance

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "Attendance",
	Plural: "Attendances",
	Path:   "/attendance",
	Event:  "attendance",
}

// AttendanceResponse renders check-in and check-out as calendar dates,
// like every other date the API returns.
type AttendanceResponse struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employee_id"`
	Date       dates.Date  `json:"date"`
	CheckIn    *dates.Date `json:"check_in"`
	CheckOut   *dates.Date `json:"check_out"`
	Status     string      `json:"status"`
	Notes      *string     `json:"notes"`
}

func ToResponse(a *attendanceDatamodel.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       dates.Of(a.Date),
		CheckIn:    dates.OfPtr(a.CheckIn),
		CheckOut:   dates.OfPtr(a.CheckOut),
		Status:     a.Status,
		Notes:      a.Notes,
	}
}
