package leave

import (
	"time"

	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type Leave struct {
	ID           int64     `gorm:"primaryKey"`
	EmployeeID   int64     `gorm:"column:employee_id;not null;index"`
	LeaveType    string    `gorm:"column:leave_type;size:50;not null"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	Reason       *string   `gorm:"column:reason;type:text"`
	Status       string    `gorm:"column:status;size:50;not null;default:Pending"`
	ApprovedByID *int64    `gorm:"column:approved_by_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
	Approver *employee.Employee `gorm:"foreignKey:ApprovedByID"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l Leave) EntityID() int64 {
	return l.ID
}
