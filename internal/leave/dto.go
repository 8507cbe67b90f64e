package leave

import (
	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
)

const statusRule = "oneof=" + leaveDatamodel.StatusPending + " " + leaveDatamodel.StatusApproved + " " +
	leaveDatamodel.StatusRejected + " " + leaveDatamodel.StatusCancelled

type CreateLeaveDTO struct {
	EmployeeID   int64       `json:"employee_id" validate:"required"`
	LeaveType    string      `json:"leave_type" validate:"required,notblank,max=50"`
	StartDate    *dates.Date `json:"start_date" validate:"required"`
	EndDate      *dates.Date `json:"end_date" validate:"required"`
	Reason       *string     `json:"reason"`
	Status       *string     `json:"status" validate:"omitempty,max=50,oneof=Pending Approved Rejected Cancelled"`
	ApprovedByID *int64      `json:"approved_by_id"`
}

func (d CreateLeaveDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateLeaveDTO) ToModel() *leaveDatamodel.Leave {
	l := &leaveDatamodel.Leave{
		EmployeeID:   d.EmployeeID,
		LeaveType:    d.LeaveType,
		Reason:       d.Reason,
		Status:       leaveDatamodel.StatusPending,
		ApprovedByID: d.ApprovedByID,
	}
	if d.StartDate != nil {
		l.StartDate = d.StartDate.Time()
	}
	if d.EndDate != nil {
		l.EndDate = d.EndDate.Time()
	}
	if d.Status != nil {
		l.Status = *d.Status
	}
	return l
}

type UpdateLeaveDTO struct {
	EmployeeID   patch.Field[int64]      `json:"employee_id"`
	LeaveType    patch.Field[string]     `json:"leave_type"`
	StartDate    patch.Field[dates.Date] `json:"start_date"`
	EndDate      patch.Field[dates.Date] `json:"end_date"`
	Reason       patch.Field[string]     `json:"reason"`
	Status       patch.Field[string]     `json:"status"`
	ApprovedByID patch.Field[int64]      `json:"approved_by_id"`
}

func (d UpdateLeaveDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", d.EmployeeID).NotNull()
	v.Field("leave_type", d.LeaveType).NotNull().NotBlank().MaxLength(50)
	v.Field("start_date", d.StartDate).NotNull()
	v.Field("end_date", d.EndDate).NotNull()
	v.Field("status", d.Status).NotNull().Rules(statusRule)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d UpdateLeaveDTO) ApplyTo(l *leaveDatamodel.Leave) error {
	d.EmployeeID.ApplyTo(&l.EmployeeID)
	d.LeaveType.ApplyTo(&l.LeaveType)
	patch.Map(d.StartDate, dates.Date.Time).ApplyTo(&l.StartDate)
	patch.Map(d.EndDate, dates.Date.Time).ApplyTo(&l.EndDate)
	d.Reason.ApplyToPtr(&l.Reason)
	d.Status.ApplyTo(&l.Status)
	d.ApprovedByID.ApplyToPtr(&l.ApprovedByID)
	return nil
}
