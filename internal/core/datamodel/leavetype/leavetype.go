package leavetype

import "time"

type LeaveType struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;size:100;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

func (l LeaveType) EntityID() int64 {
	return l.ID
}
