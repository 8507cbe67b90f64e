package employee

import (
	"gorm.io/datatypes"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/common/validation"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
)

type CreateEmployeeDTO struct {
	EmployeeID      string      `json:"employee_id" validate:"required,notblank,max=50"`
	FirstName       string      `json:"first_name" validate:"required,notblank,max=100"`
	LastName        string      `json:"last_name" validate:"required,notblank,max=100"`
	Email           string      `json:"email" validate:"required,email,max=255"`
	Phone           string      `json:"phone" validate:"required,max=20"`
	DepartmentID    int64       `json:"department_id" validate:"required"`
	DesignationID   int64       `json:"designation_id" validate:"required"`
	JoiningDate     *dates.Date `json:"joining_date" validate:"required"`
	ProfileImageURL *string     `json:"profile_image_url" validate:"omitempty,max=512"`
	ManagerID       *int64      `json:"manager_id"`
	WorkLocationID  *int64      `json:"work_location_id"`
	JobTypeID       *int64      `json:"job_type_id"`

	ProbationPeriod  *string     `json:"probation_period" validate:"omitempty,max=50"`
	ShiftTiming      *string     `json:"shift_timing" validate:"omitempty,max=100"`
	WeeklyHours      *float64    `json:"weekly_hours" validate:"omitempty,gte=-999.99,lte=999.99"`
	AnnualLeaveTotal *int        `json:"annual_leave_total"`
	SickLeaveTotal   *int        `json:"sick_leave_total"`
	CasualLeaveTotal *int        `json:"casual_leave_total"`
	DateOfBirth      *dates.Date `json:"date_of_birth"`
	Gender           *string     `json:"gender" validate:"omitempty,max=20"`
	MaritalStatus    *string     `json:"marital_status" validate:"omitempty,max=20"`

	Address               *string `json:"address"`
	City                  *string `json:"city" validate:"omitempty,max=100"`
	State                 *string `json:"state" validate:"omitempty,max=100"`
	ZipCode               *string `json:"zip_code" validate:"omitempty,max=20"`
	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=20"`

	Salary       *float64          `json:"salary" validate:"omitempty,gte=-9999999999.99,lte=9999999999.99"`
	Currency     *string           `json:"currency" validate:"omitempty,max=10"`
	PayFrequency *string           `json:"pay_frequency" validate:"omitempty,max=50"`
	BankAccount  *string           `json:"bank_account" validate:"omitempty,max=100"`
	BankName     *string           `json:"bank_name" validate:"omitempty,max=100"`
	TaxID        *string           `json:"tax_id" validate:"omitempty,max=100"`
	Benefits     datatypes.JSONMap `json:"benefits"`
	IsActive     *bool             `json:"is_active"`
}

func (d CreateEmployeeDTO) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return nil
}

func (d CreateEmployeeDTO) ToModel() *employeeDatamodel.Employee {
	e := &employeeDatamodel.Employee{
		EmployeeCode:          d.EmployeeID,
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		Email:                 d.Email,
		Phone:                 d.Phone,
		ProfileImageURL:       d.ProfileImageURL,
		DepartmentID:          d.DepartmentID,
		DesignationID:         d.DesignationID,
		ManagerID:             d.ManagerID,
		WorkLocationID:        d.WorkLocationID,
		JobTypeID:             d.JobTypeID,
		ProbationPeriod:       d.ProbationPeriod,
		ShiftTiming:           d.ShiftTiming,
		WeeklyHours:           d.WeeklyHours,
		AnnualLeaveTotal:      d.AnnualLeaveTotal,
		SickLeaveTotal:        d.SickLeaveTotal,
		CasualLeaveTotal:      d.CasualLeaveTotal,
		Gender:                d.Gender,
		MaritalStatus:         d.MaritalStatus,
		Address:               d.Address,
		City:                  d.City,
		State:                 d.State,
		ZipCode:               d.ZipCode,
		EmergencyContactName:  d.EmergencyContactName,
		EmergencyContactPhone: d.EmergencyContactPhone,
		Salary:                d.Salary,
		Currency:              d.Currency,
		PayFrequency:          d.PayFrequency,
		BankAccount:           d.BankAccount,
		BankName:              d.BankName,
		TaxID:                 d.TaxID,
		Benefits:              d.Benefits,
		IsActive:              true,
	}
	if d.JoiningDate != nil {
		e.JoiningDate = d.JoiningDate.Time()
	}
	if d.DateOfBirth != nil {
		dob := d.DateOfBirth.Time()
		e.DateOfBirth = &dob
	}
	if d.IsActive != nil {
		e.IsActive = *d.IsActive
	}
	return e
}

// UpdateEmployeeDTO changes only the keys present in the payload. Keys sent
// as null clear optional columns and are rejected for required ones.
type UpdateEmployeeDTO struct {
	EmployeeID      patch.Field[string]     `json:"employee_id"`
	FirstName       patch.Field[string]     `json:"first_name"`
	LastName        patch.Field[string]     `json:"last_name"`
	Email           patch.Field[string]     `json:"email"`
	Phone           patch.Field[string]     `json:"phone"`
	DepartmentID    patch.Field[int64]      `json:"department_id"`
	DesignationID   patch.Field[int64]      `json:"designation_id"`
	JoiningDate     patch.Field[dates.Date] `json:"joining_date"`
	ProfileImageURL patch.Field[string]     `json:"profile_image_url"`
	ManagerID       patch.Field[int64]      `json:"manager_id"`
	WorkLocationID  patch.Field[int64]      `json:"work_location_id"`
	JobTypeID       patch.Field[int64]      `json:"job_type_id"`

	ProbationPeriod  patch.Field[string]     `json:"probation_period"`
	ShiftTiming      patch.Field[string]     `json:"shift_timing"`
	WeeklyHours      patch.Field[float64]    `json:"weekly_hours"`
	AnnualLeaveTotal patch.Field[int]        `json:"annual_leave_total"`
	SickLeaveTotal   patch.Field[int]        `json:"sick_leave_total"`
	CasualLeaveTotal patch.Field[int]        `json:"casual_leave_total"`
	DateOfBirth      patch.Field[dates.Date] `json:"date_of_birth"`
	Gender           patch.Field[string]     `json:"gender"`
	MaritalStatus    patch.Field[string]     `json:"marital_status"`

	Address               patch.Field[string] `json:"address"`
	City                  patch.Field[string] `json:"city"`
	State                 patch.Field[string] `json:"state"`
	ZipCode               patch.Field[string] `json:"zip_code"`
	EmergencyContactName  patch.Field[string] `json:"emergency_contact_name"`
	EmergencyContactPhone patch.Field[string] `json:"emergency_contact_phone"`

	Salary       patch.Field[float64]           `json:"salary"`
	Currency     patch.Field[string]            `json:"currency"`
	PayFrequency patch.Field[string]            `json:"pay_frequency"`
	BankAccount  patch.Field[string]            `json:"bank_account"`
	BankName     patch.Field[string]            `json:"bank_name"`
	TaxID        patch.Field[string]            `json:"tax_id"`
	Benefits     patch.Field[datatypes.JSONMap] `json:"benefits"`
	IsActive     patch.Field[bool]              `json:"is_active"`
}

func (d UpdateEmployeeDTO) Validate() error {
	v := validation.NewValidator()

	v.Field("employee_id", d.EmployeeID).NotNull().NotBlank().MaxLength(50)
	v.Field("first_name", d.FirstName).NotNull().NotBlank().MaxLength(100)
	v.Field("last_name", d.LastName).NotNull().NotBlank().MaxLength(100)
	v.Field("email", d.Email).NotNull().Rules("email").MaxLength(255)
	v.Field("phone", d.Phone).NotNull().MaxLength(20)
	v.Field("department_id", d.DepartmentID).NotNull()
	v.Field("designation_id", d.DesignationID).NotNull()
	v.Field("joining_date", d.JoiningDate).NotNull()
	v.Field("is_active", d.IsActive).NotNull()

	v.Field("profile_image_url", d.ProfileImageURL).MaxLength(512)
	v.Field("probation_period", d.ProbationPeriod).MaxLength(50)
	v.Field("shift_timing", d.ShiftTiming).MaxLength(100)
	v.Field("weekly_hours", d.WeeklyHours).Rules("gte=-999.99,lte=999.99")
	v.Field("gender", d.Gender).MaxLength(20)
	v.Field("marital_status", d.MaritalStatus).MaxLength(20)
	v.Field("city", d.City).MaxLength(100)
	v.Field("state", d.State).MaxLength(100)
	v.Field("zip_code", d.ZipCode).MaxLength(20)
	v.Field("emergency_contact_name", d.EmergencyContactName).MaxLength(200)
	v.Field("emergency_contact_phone", d.EmergencyContactPhone).MaxLength(20)
	v.Field("salary", d.Salary).Rules("gte=-9999999999.99,lte=9999999999.99")
	v.Field("currency", d.Currency).MaxLength(10)
	v.Field("pay_frequency", d.PayFrequency).MaxLength(50)
	v.Field("bank_account", d.BankAccount).MaxLength(100)
	v.Field("bank_name", d.BankName).MaxLength(100)
	v.Field("tax_id", d.TaxID).MaxLength(100)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ApplyTo merges the payload into e. Direct self-management is rejected;
// longer manager chains are not walked.
func (d UpdateEmployeeDTO) ApplyTo(e *employeeDatamodel.Employee) error {
	if d.ManagerID.Set && !d.ManagerID.Null && d.ManagerID.Value == e.ID {
		return internal.NewValidationFieldError("manager_id",
			"an employee cannot be their own manager", internal.ErrCodeInvalidReference)
	}

	d.EmployeeID.ApplyTo(&e.EmployeeCode)
	d.FirstName.ApplyTo(&e.FirstName)
	d.LastName.ApplyTo(&e.LastName)
	d.Email.ApplyTo(&e.Email)
	d.Phone.ApplyTo(&e.Phone)
	d.DepartmentID.ApplyTo(&e.DepartmentID)
	d.DesignationID.ApplyTo(&e.DesignationID)
	patch.Map(d.JoiningDate, dates.Date.Time).ApplyTo(&e.JoiningDate)
	d.ProfileImageURL.ApplyToPtr(&e.ProfileImageURL)
	d.ManagerID.ApplyToPtr(&e.ManagerID)
	d.WorkLocationID.ApplyToPtr(&e.WorkLocationID)
	d.JobTypeID.ApplyToPtr(&e.JobTypeID)

	d.ProbationPeriod.ApplyToPtr(&e.ProbationPeriod)
	d.ShiftTiming.ApplyToPtr(&e.ShiftTiming)
	d.WeeklyHours.ApplyToPtr(&e.WeeklyHours)
	d.AnnualLeaveTotal.ApplyToPtr(&e.AnnualLeaveTotal)
	d.SickLeaveTotal.ApplyToPtr(&e.SickLeaveTotal)
	d.CasualLeaveTotal.ApplyToPtr(&e.CasualLeaveTotal)
	patch.Map(d.DateOfBirth, dates.Date.Time).ApplyToPtr(&e.DateOfBirth)
	d.Gender.ApplyToPtr(&e.Gender)
	d.MaritalStatus.ApplyToPtr(&e.MaritalStatus)

	d.Address.ApplyToPtr(&e.Address)
	d.City.ApplyToPtr(&e.City)
	d.State.ApplyToPtr(&e.State)
	d.ZipCode.ApplyToPtr(&e.ZipCode)
	d.EmergencyContactName.ApplyToPtr(&e.EmergencyContactName)
	d.EmergencyContactPhone.ApplyToPtr(&e.EmergencyContactPhone)

	d.Salary.ApplyToPtr(&e.Salary)
	d.Currency.ApplyToPtr(&e.Currency)
	d.PayFrequency.ApplyToPtr(&e.PayFrequency)
	d.BankAccount.ApplyToPtr(&e.BankAccount)
	d.BankName.ApplyToPtr(&e.BankName)
	d.TaxID.ApplyToPtr(&e.TaxID)
	if d.Benefits.Present() {
		e.Benefits = d.Benefits.Value
	}
	d.IsActive.ApplyTo(&e.IsActive)
	return nil
}
