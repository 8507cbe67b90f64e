package attendance

import (
	"time"

	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
)

// Attendance holds at most one row per employee and calendar date.
type Attendance struct {
	ID         int64      `gorm:"primaryKey"`
	EmployeeID int64      `gorm:"column:employee_id;not null;uniqueIndex:uq_employee_date,priority:1"`
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_employee_date,priority:2"`
	CheckIn    *time.Time `gorm:"column:check_in"`
	CheckOut   *time.Time `gorm:"column:check_out"`
	Status     string     `gorm:"column:status;size:50;not null"`
	Notes      *string    `gorm:"column:notes;type:text"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a Attendance) EntityID() int64 {
	return a.ID
}
