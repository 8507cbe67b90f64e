package rest

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/frahmantamala/hrms-backend/internal/attendance"
	"github.com/frahmantamala/hrms-backend/internal/companyunit"
	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	jobtypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/jobtype"
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	leavepolicyDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavepolicy"
	leavetypeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leavetype"
	"github.com/frahmantamala/hrms-backend/internal/department"
	"github.com/frahmantamala/hrms-backend/internal/designation"
	"github.com/frahmantamala/hrms-backend/internal/employee"
	"github.com/frahmantamala/hrms-backend/internal/jobtype"
	"github.com/frahmantamala/hrms-backend/internal/leave"
	"github.com/frahmantamala/hrms-backend/internal/leavepolicy"
	"github.com/frahmantamala/hrms-backend/internal/leavetype"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/resource/postgres"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

// NewResourceHandlers wires repository, service and handler for every collection.
func NewResourceHandlers(db *gorm.DB, publisher resource.Publisher, logger *slog.Logger) []resource.Routable {
	base := transport.NewBaseHandler(logger)

	return []resource.Routable{
		employee.NewHandler(base, employee.NewService(postgres.NewRepository[employeeDatamodel.Employee](db), publisher, logger)),
		department.NewHandler(base, department.NewService(postgres.NewRepository[departmentDatamodel.Department](db), publisher, logger)),
		designation.NewHandler(base, designation.NewService(postgres.NewRepository[designationDatamodel.Designation](db), publisher, logger)),
		jobtype.NewHandler(base, jobtype.NewService(postgres.NewRepository[jobtypeDatamodel.JobType](db), publisher, logger)),
		companyunit.NewHandler(base, companyunit.NewService(postgres.NewRepository[companyunitDatamodel.CompanyUnit](db), publisher, logger)),
		leave.NewHandler(base, leave.NewService(postgres.NewRepository[leaveDatamodel.Leave](db), publisher, logger)),
		leavetype.NewHandler(base, leavetype.NewService(postgres.NewRepository[leavetypeDatamodel.LeaveType](db), publisher, logger)),
		leavepolicy.NewHandler(base, leavepolicy.NewService(postgres.NewRepository[leavepolicyDatamodel.LeavePolicy](db), publisher, logger)),
		attendance.NewHandler(base, attendance.NewService(postgres.NewRepository[attendanceDatamodel.Attendance](db), publisher, logger)),
	}
}
