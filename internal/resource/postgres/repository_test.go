package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	attendanceDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/attendance"
	companyunitDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/companyunit"
	departmentDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/department"
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	employeeDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/employee"
	leaveDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/resource/postgres"
	"github.com/frahmantamala/hrms-backend/internal/testsupport"
)

func TestRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Resource Repository Suite")
}

type foreignKey struct {
	Table string
	From  string
	To    string
}

var _ = Describe("Schema", func() {
	var db *gorm.DB

	BeforeEach(func() {
		var err error
		db, err = testsupport.OpenSQLite()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(testsupport.Close(db)).To(Succeed())
	})

	foreignKeys := func(table string) []foreignKey {
		var keys []foreignKey
		Expect(db.Raw(`SELECT "table", "from", "to" FROM pragma_foreign_key_list(?)`, table).Scan(&keys).Error).To(Succeed())
		return keys
	}

	DescribeTable("foreign keys point from the referencing table",
		func(table string, want []foreignKey) {
			Expect(foreignKeys(table)).To(ConsistOf(want))
		},
		Entry("employees", "employees", []foreignKey{
			{Table: "departments", From: "department_id", To: "id"},
			{Table: "designations", From: "designation_id", To: "id"},
			{Table: "employees", From: "manager_id", To: "id"},
			{Table: "company_units", From: "work_location_id", To: "id"},
			{Table: "job_types", From: "job_type_id", To: "id"},
		}),
		Entry("leaves", "leaves", []foreignKey{
			{Table: "employees", From: "employee_id", To: "id"},
			{Table: "employees", From: "approved_by_id", To: "id"},
		}),
		Entry("attendance", "attendance", []foreignKey{
			{Table: "employees", From: "employee_id", To: "id"},
		}),
	)

	It("keeps the employee code a text column", func() {
		var columnType string
		Expect(db.Raw(`SELECT type FROM pragma_table_info('employees') WHERE name = 'employee_id'`).Scan(&columnType).Error).To(Succeed())
		Expect(strings.ToLower(columnType)).To(HavePrefix("text"))
	})
})

var _ = Describe("Repository", func() {
	var (
		db          *gorm.DB
		departments *postgres.Repository[departmentDatamodel.Department]
		ctx         context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = testsupport.OpenSQLite()
		Expect(err).NotTo(HaveOccurred())

		departments = postgres.NewRepository[departmentDatamodel.Department](db)
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(testsupport.Close(db)).To(Succeed())
	})

	createDepartment := func(name string) *departmentDatamodel.Department {
		d := &departmentDatamodel.Department{Name: name}
		Expect(departments.Create(ctx, d)).To(Succeed())
		return d
	}

	Describe("Create", func() {
		It("assigns ids", func() {
			first := createDepartment("Engineering")
			second := createDepartment("Finance")
			Expect(first.ID).To(BeNumerically(">", 0))
			Expect(second.ID).To(BeNumerically(">", first.ID))
		})

		It("reports unique violations as ErrDuplicate", func() {
			createDepartment("Engineering")
			err := departments.Create(ctx, &departmentDatamodel.Department{Name: "Engineering"})
			Expect(errors.Is(err, resource.ErrDuplicate)).To(BeTrue())
		})

		It("reports dangling references as ErrReferenceViolation", func() {
			employees := postgres.NewRepository[employeeDatamodel.Employee](db)
			err := employees.Create(ctx, &employeeDatamodel.Employee{
				EmployeeCode:  "EMP-1",
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				Phone:         "1",
				DepartmentID:  999,
				DesignationID: 999,
				JoiningDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:      true,
			})
			Expect(errors.Is(err, resource.ErrReferenceViolation)).To(BeTrue())
		})
	})

	Describe("GetByID", func() {
		It("returns ErrNotFound for unknown ids", func() {
			_, err := departments.GetByID(ctx, 999999)
			Expect(err).To(MatchError(resource.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("pages in id order", func() {
			for _, name := range []string{"A", "B", "C", "D"} {
				createDepartment(name)
			}

			items, err := departments.List(ctx, resource.Page{Offset: 1, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2))
			Expect(items[0].Name).To(Equal("B"))
			Expect(items[1].Name).To(Equal("C"))

			items, err = departments.List(ctx, resource.Page{Offset: 10, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("saves what apply changed", func() {
			d := createDepartment("Engineering-X")

			updated, err := departments.Update(ctx, d.ID, func(m *departmentDatamodel.Department) error {
				m.Name = "Engineering-Y"
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Engineering-Y"))

			stored, err := departments.GetByID(ctx, d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Engineering-Y"))
		})

		It("writes only the columns apply changed", func() {
			units := postgres.NewRepository[companyunitDatamodel.CompanyUnit](db)
			unit := &companyunitDatamodel.CompanyUnit{UnitName: "HQ"}
			Expect(units.Create(ctx, unit)).To(Succeed())

			var statements []string
			Expect(db.Callback().Update().After("gorm:update").Register("capture_sql", func(tx *gorm.DB) {
				statements = append(statements, tx.Statement.SQL.String())
			})).To(Succeed())

			address := "Jl. Merdeka 1"
			updated, err := units.Update(ctx, unit.ID, func(m *companyunitDatamodel.CompanyUnit) error {
				m.Address = &address
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.Address).To(Equal(address))

			Expect(statements).To(HaveLen(1))
			Expect(statements[0]).To(ContainSubstring("address"))
			Expect(statements[0]).NotTo(ContainSubstring("unit_name"))
			Expect(statements[0]).NotTo(ContainSubstring("created_at"))
		})

		It("skips the write when nothing changed", func() {
			d := createDepartment("Engineering")

			var statements []string
			Expect(db.Callback().Update().After("gorm:update").Register("capture_sql", func(tx *gorm.DB) {
				statements = append(statements, tx.Statement.SQL.String())
			})).To(Succeed())

			updated, err := departments.Update(ctx, d.ID, func(*departmentDatamodel.Department) error { return nil })
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Engineering"))
			Expect(statements).To(BeEmpty())
		})

		It("leaves the row untouched when apply fails", func() {
			d := createDepartment("Engineering")
			boom := errors.New("rejected")

			_, err := departments.Update(ctx, d.ID, func(m *departmentDatamodel.Department) error {
				m.Name = "Changed"
				return boom
			})
			Expect(err).To(MatchError(boom))

			stored, err := departments.GetByID(ctx, d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Engineering"))
		})

		It("reports collisions on update", func() {
			createDepartment("Engineering")
			d := createDepartment("Finance")

			_, err := departments.Update(ctx, d.ID, func(m *departmentDatamodel.Department) error {
				m.Name = "Engineering"
				return nil
			})
			Expect(errors.Is(err, resource.ErrDuplicate)).To(BeTrue())
		})

		It("returns ErrNotFound for unknown ids", func() {
			_, err := departments.Update(ctx, 999999, func(*departmentDatamodel.Department) error { return nil })
			Expect(err).To(MatchError(resource.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes the row and returns it", func() {
			d := createDepartment("Engineering")

			deleted, err := departments.Delete(ctx, d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Name).To(Equal("Engineering"))

			_, err = departments.GetByID(ctx, d.ID)
			Expect(err).To(MatchError(resource.ErrNotFound))

			_, err = departments.Delete(ctx, d.ID)
			Expect(err).To(MatchError(resource.ErrNotFound))
		})

		It("refuses to delete a referenced row", func() {
			d := createDepartment("Engineering")
			title := &designationDatamodel.Designation{Title: "Engineer"}
			Expect(postgres.NewRepository[designationDatamodel.Designation](db).Create(ctx, title)).To(Succeed())

			Expect(postgres.NewRepository[employeeDatamodel.Employee](db).Create(ctx, &employeeDatamodel.Employee{
				EmployeeCode:  "EMP-1",
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				Phone:         "1",
				DepartmentID:  d.ID,
				DesignationID: title.ID,
				JoiningDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:      true,
			})).To(Succeed())

			_, err := departments.Delete(ctx, d.ID)
			Expect(errors.Is(err, resource.ErrReferenceViolation)).To(BeTrue())
		})
	})

	Describe("employee references", func() {
		It("rejects a leave for an unknown employee", func() {
			leaves := postgres.NewRepository[leaveDatamodel.Leave](db)
			err := leaves.Create(ctx, &leaveDatamodel.Leave{
				EmployeeID: 424242,
				LeaveType:  "Annual",
				StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				Status:     leaveDatamodel.StatusPending,
			})
			Expect(errors.Is(err, resource.ErrReferenceViolation)).To(BeTrue())
		})

		It("rejects attendance for an unknown employee", func() {
			attendance := postgres.NewRepository[attendanceDatamodel.Attendance](db)
			err := attendance.Create(ctx, &attendanceDatamodel.Attendance{
				EmployeeID: 424242,
				Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Status:     "Present",
			})
			Expect(errors.Is(err, resource.ErrReferenceViolation)).To(BeTrue())
		})
	})

	Describe("composite uniqueness", func() {
		It("allows one attendance row per employee and day", func() {
			d := createDepartment("Engineering")
			title := &designationDatamodel.Designation{Title: "Engineer"}
			Expect(postgres.NewRepository[designationDatamodel.Designation](db).Create(ctx, title)).To(Succeed())
			e := &employeeDatamodel.Employee{
				EmployeeCode:  "EMP-1",
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				Phone:         "1",
				DepartmentID:  d.ID,
				DesignationID: title.ID,
				JoiningDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:      true,
			}
			Expect(postgres.NewRepository[employeeDatamodel.Employee](db).Create(ctx, e)).To(Succeed())

			attendance := postgres.NewRepository[attendanceDatamodel.Attendance](db)
			day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
			Expect(attendance.Create(ctx, &attendanceDatamodel.Attendance{EmployeeID: e.ID, Date: day, Status: "Present"})).To(Succeed())

			err := attendance.Create(ctx, &attendanceDatamodel.Attendance{EmployeeID: e.ID, Date: day, Status: "Late"})
			Expect(errors.Is(err, resource.ErrDuplicate)).To(BeTrue())

			Expect(attendance.Create(ctx, &attendanceDatamodel.Attendance{EmployeeID: e.ID, Date: day.AddDate(0, 0, 1), Status: "Present"})).To(Succeed())
		})
	})
})
