// Package testsupport opens throwaway stores for package tests.
package testsupport

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
)

// OpenSQLite returns a private in-memory database with foreign keys on and
// every HRMS table created.
func OpenSQLite() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// each new connection would get its own empty memory database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&departmentDatamodel.Department{},
		&designationDatamodel.Designation{},
		&jobtypeDatamodel.JobType{},
		&companyunitDatamodel.CompanyUnit{},
		&leavetypeDatamodel.LeaveType{},
		&leavepolicyDatamodel.LeavePolicy{},
		&employeeDatamodel.Employee{},
		&leaveDatamodel.Leave{},
		&attendanceDatamodel.Attendance{},
	)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
