package leavepolicy

import (
	"time"

	"gorm.io/datatypes"
)

type LeavePolicy struct {
	ID         int64             `gorm:"primaryKey"`
	PolicyName string            `gorm:"column:policy_name;size:150;uniqueIndex;not null"`
	Details    datatypes.JSONMap `gorm:"column:details;not null"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

func (l LeavePolicy) EntityID() int64 {
	return l.ID
}
