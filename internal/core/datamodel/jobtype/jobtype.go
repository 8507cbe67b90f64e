package jobtype

import "time"

type JobType struct {
	ID        int64     `gorm:"primaryKey"`
	TypeName  string    `gorm:"column:type_name;size:100;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (JobType) TableName() string {
	return "job_types"
}

func (j JobType) EntityID() int64 {
	return j.ID
}
