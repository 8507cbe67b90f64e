package employee

import (
	"gorm.io/datatypes"

	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "Employee",
	Plural: "Employees",
	Path:   "/employees",
	Event:  "employee",
}

type EmployeeResponse struct {
	ID              int64   `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ProfileImageURL *string `json:"profile_image_url"`

	DepartmentID   int64  `json:"department_id"`
	DesignationID  int64  `json:"designation_id"`
	ManagerID      *int64 `json:"manager_id"`
	WorkLocationID *int64 `json:"work_location_id"`
	JobTypeID      *int64 `json:"job_type_id"`

	ProbationPeriod  *string     `json:"probation_period"`
	ShiftTiming      *string     `json:"shift_timing"`
	WeeklyHours      *float64    `json:"weekly_hours"`
	AnnualLeaveTotal *int        `json:"annual_leave_total"`
	SickLeaveTotal   *int        `json:"sick_leave_total"`
	CasualLeaveTotal *int        `json:"casual_leave_total"`
	JoiningDate      dates.Date  `json:"joining_date"`
	DateOfBirth      *dates.Date `json:"date_of_birth"`
	Gender           *string     `json:"gender"`
	MaritalStatus    *string     `json:"marital_status"`

	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Salary       *float64          `json:"salary"`
	Currency     *string           `json:"currency"`
	PayFrequency *string           `json:"pay_frequency"`
	BankAccount  *string           `json:"bank_account"`
	BankName     *string           `json:"bank_name"`
	TaxID        *string           `json:"tax_id"`
	Benefits     datatypes.JSONMap `json:"benefits"`
	IsActive     bool              `json:"is_active"`
}

func ToResponse(e *employeeDatamodel.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		EmployeeID:            e.EmployeeCode,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		Email:                 e.Email,
		Phone:                 e.Phone,
		ProfileImageURL:       e.ProfileImageURL,
		DepartmentID:          e.DepartmentID,
		DesignationID:         e.DesignationID,
		ManagerID:             e.ManagerID,
		WorkLocationID:        e.WorkLocationID,
		JobTypeID:             e.JobTypeID,
		ProbationPeriod:       e.ProbationPeriod,
		ShiftTiming:           e.ShiftTiming,
		WeeklyHours:           e.WeeklyHours,
		AnnualLeaveTotal:      e.AnnualLeaveTotal,
		SickLeaveTotal:        e.SickLeaveTotal,
		CasualLeaveTotal:      e.CasualLeaveTotal,
		JoiningDate:           dates.Of(e.JoiningDate),
		DateOfBirth:           dates.OfPtr(e.DateOfBirth),
		Gender:                e.Gender,
		MaritalStatus:         e.MaritalStatus,
		Address:               e.Address,
		City:                  e.City,
		State:                 e.State,
		ZipCode:               e.ZipCode,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		Salary:                e.Salary,
		Currency:              e.Currency,
		PayFrequency:          e.PayFrequency,
		BankAccount:           e.BankAccount,
		BankName:              e.BankName,
		TaxID:                 e.TaxID,
		Benefits:              e.Benefits,
		IsActive:              e.IsActive,
	}
}
