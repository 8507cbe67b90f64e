package designation

import "time"

type Designation struct {
	ID        int64     `gorm:"primaryKey"`
	Title     string    `gorm:"column:title;size:255;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Designation) TableName() string {
	return "designations"
}

func (d Designation) EntityID() int64 {
	return d.ID
}
