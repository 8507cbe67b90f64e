package attendance

import (
	"time"

	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
)

type CreateAttendanceDTO struct {
	EmployeeID int64           `json:"employee_id" validate:"required"`
	Date       *dates.Date     `json:"date" validate:"required"`
	CheckIn    *dates.DateTime `json:"check_in"`
	CheckOut   *dates.DateTime `json:"check_out"`
	Status     string          `json:"status" validate:"required,notblank,max=50"`
	Notes      *string         `json:"notes"`
}

func (d CreateAttendanceDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateAttendanceDTO) ToModel() *attendanceDatamodel.Attendance {
	a := &attendanceDatamodel.Attendance{
		EmployeeID: d.EmployeeID,
		CheckIn:    timePtr(d.CheckIn),
		CheckOut:   timePtr(d.CheckOut),
		Status:     d.Status,
		Notes:      d.Notes,
	}
	if d.Date != nil {
		a.Date = d.Date.Time()
	}
	return a
}

func timePtr(dt *dates.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := dt.Time
	return &t
}

type UpdateAttendanceDTO struct {
	EmployeeID patch.Field[int64]          `json:"employee_id"`
	Date       patch.Field[dates.Date]     `json:"date"`
	CheckIn    patch.Field[dates.DateTime] `json:"check_in"`
	CheckOut   patch.Field[dates.DateTime] `json:"check_out"`
	Status     patch.Field[string]         `json:"status"`
	Notes      patch.Field[string]         `json:"notes"`
}

func (d UpdateAttendanceDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", d.EmployeeID).NotNull()
	v.Field("date", d.Date).NotNull()
	v.Field("status", d.Status).NotNull().NotBlank().MaxLength(50)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateAttendanceDTO) ApplyTo(a *attendanceDatamodel.Attendance) error {
	toTime := func(dt dates.DateTime) time.Time { return dt.Time }

	d.EmployeeID.ApplyTo(&a.EmployeeID)
	patch.Map(d.Date, dates.Date.Time).ApplyTo(&a.Date)
	patch.Map(d.CheckIn, toTime).ApplyToPtr(&a.CheckIn)
	patch.Map(d.CheckOut, toTime).ApplyToPtr(&a.CheckOut)
	d.Status.ApplyTo(&a.Status)
	d.Notes.ApplyToPtr(&a.Notes)
	return nil
}
