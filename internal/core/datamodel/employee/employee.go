package employee

import (
	"time"

	"gorm.io/datatypes"

	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	"github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
)

type Employee struct {
	ID int64 `gorm:"primaryKey"`
	// EmployeeCode is the HR-issued code, exposed as employee_id.
	EmployeeCode string `gorm:"column:employee_id;size:50;uniqueIndex;not null"`

	FirstName       string  `gorm:"column:first_name;size:100;not null"`
	LastName        string  `gorm:"column:last_name;size:100;not null"`
	Email           string  `gorm:"column:email;size:255;uniqueIndex;not null"`
	Phone           string  `gorm:"column:phone;size:20;not null"`
	ProfileImageURL *string `gorm:"column:profile_image_url;size:512"`

	DepartmentID   int64  `gorm:"column:department_id;not null;index"`
	DesignationID  int64  `gorm:"column:designation_id;not null;index"`
	ManagerID      *int64 `gorm:"column:manager_id;index"`
	WorkLocationID *int64 `gorm:"column:work_location_id;index"`
	JobTypeID      *int64 `gorm:"column:job_type_id;index"`

	ProbationPeriod  *string    `gorm:"column:probation_period;size:50"`
	ShiftTiming      *string    `gorm:"column:shift_timing;size:100"`
	WeeklyHours      *float64   `gorm:"column:weekly_hours;type:numeric(5,2)"`
	AnnualLeaveTotal *int       `gorm:"column:annual_leave_total"`
	SickLeaveTotal   *int       `gorm:"column:sick_leave_total"`
	CasualLeaveTotal *int       `gorm:"column:casual_leave_total"`
	JoiningDate      time.Time  `gorm:"column:joining_date;type:date;not null"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth;type:date"`
	Gender           *string    `gorm:"column:gender;size:20"`
	MaritalStatus    *string    `gorm:"column:marital_status;size:20"`

	Address               *string `gorm:"column:address;type:text"`
	City                  *string `gorm:"column:city;size:100"`
	State                 *string `gorm:"column:state;size:100"`
	ZipCode               *string `gorm:"column:zip_code;size:20"`
	EmergencyContactName  *string `gorm:"column:emergency_contact_name;size:200"`
	EmergencyContactPhone *string `gorm:"column:emergency_contact_phone;size:20"`

	Salary       *float64          `gorm:"column:salary;type:numeric(12,2)"`
	Currency     *string           `gorm:"column:currency;size:10"`
	PayFrequency *string           `gorm:"column:pay_frequency;size:50"`
	BankAccount  *string           `gorm:"column:bank_account;size:100"`
	BankName     *string           `gorm:"column:bank_name;size:100"`
	TaxID        *string           `gorm:"column:tax_id;size:100"`
	Benefits     datatypes.JSONMap `gorm:"column:benefits"`

	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Department   *department.Department   `gorm:"foreignKey:DepartmentID"`
	Designation  *designation.Designation `gorm:"foreignKey:DesignationID"`
	Manager      *Employee                `gorm:"foreignKey:ManagerID"`
	WorkLocation *companyunit.CompanyUnit `gorm:"foreignKey:WorkLocationID"`
	JobType      *jobtype.JobType         `gorm:"foreignKey:JobTypeID"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) EntityID() int64 {
	return e.ID
}
