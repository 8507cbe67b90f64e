package companyunit

import "time"

// CompanyUnit is an office or site; employees reference it as their work location.
type CompanyUnit struct {
	ID        int64     `gorm:"primaryKey"`
	UnitName  string    `gorm:"column:unit_name;size:255;uniqueIndex;not null"`
	Address   *string   `gorm:"column:address;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CompanyUnit) TableName() string {
	return "company_units"
}

func (c CompanyUnit) EntityID() int64 {
	return c.ID
}
