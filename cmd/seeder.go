package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		ctx := context.Background()
		if clearData {
			if err := clearTables(ctx, db); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		if err := seed(ctx, db); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		fmt.Println("Seeding completed")
	},
}

type namedRow struct {
	Name string `db:"name"`
}

type unitRow struct {
	Name    string `db:"name"`
	Address string `db:"address"`
}

type policyRow struct {
	Name    string `db:"name"`
	Details string `db:"details"`
}

type employeeRow struct {
	EmployeeID  string `db:"employee_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Department  string `db:"department"`
	Designation string `db:"designation"`
	JobType     string `db:"job_type"`
	Unit        string `db:"unit"`
	JoiningDate string `db:"joining_date"`
}

func clearTables(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE attendance, leaves, employees, leave_policies, leave_types,
		company_units, job_types, designations, departments RESTART IDENTITY CASCADE`)
	return err
}

func seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	lookups := []struct {
		query string
		rows  []namedRow
	}{
		{
			`INSERT INTO departments (name) VALUES (:name) ON CONFLICT DO NOTHING`,
			[]namedRow{{"Engineering"}, {"Human Resources"}, {"Finance"}, {"Sales"}},
		},
		{
			`INSERT INTO designations (title) VALUES (:name) ON CONFLICT DO NOTHING`,
			[]namedRow{{"Software Engineer"}, {"Engineering Manager"}, {"HR Specialist"}, {"Accountant"}},
		},
		{
			`INSERT INTO job_types (type_name) VALUES (:name) ON CONFLICT DO NOTHING`,
			[]namedRow{{"Full-time"}, {"Part-time"}, {"Contract"}, {"Intern"}},
		},
		{
			`INSERT INTO leave_types (name) VALUES (:name) ON CONFLICT DO NOTHING`,
			[]namedRow{{"Annual"}, {"Sick"}, {"Casual"}, {"Unpaid"}},
		},
	}
	for _, l := range lookups {
		if _, err := tx.NamedExecContext(ctx, l.query, l.rows); err != nil {
			return fmt.Errorf("seed lookup: %w", err)
		}
	}

	units := []unitRow{
		{"Head Office", "1 Main Street"},
		{"Remote", ""},
	}
	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO company_units (unit_name, address) VALUES (:name, NULLIF(:address, '')) ON CONFLICT DO NOTHING`,
		units); err != nil {
		return fmt.Errorf("seed company units: %w", err)
	}

	policies := []policyRow{
		{"Standard", `{"annual": 20, "sick": 10, "casual": 5, "carry_over": true}`},
		{"Probation", `{"annual": 0, "sick": 5, "casual": 2, "carry_over": false}`},
	}
	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO leave_policies (policy_name, details) VALUES (:name, CAST(:details AS JSONB)) ON CONFLICT DO NOTHING`,
		policies); err != nil {
		return fmt.Errorf("seed leave policies: %w", err)
	}

	employees := []employeeRow{
		{"EMP-0001", "Ada", "Lovelace", "ada@example.com", "+620000001", "Engineering", "Engineering Manager", "Full-time", "Head Office", "2020-01-06"},
		{"EMP-0002", "Alan", "Turing", "alan@example.com", "+620000002", "Engineering", "Software Engineer", "Full-time", "Remote", "2021-03-15"},
		{"EMP-0003", "Grace", "Hopper", "grace@example.com", "+620000003", "Human Resources", "HR Specialist", "Contract", "Head Office", "2022-07-01"},
	}
	for _, e := range employees {
		if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO employees (employee_id, first_name, last_name, email, phone,
			department_id, designation_id, job_type_id, work_location_id, joining_date, is_active)
		SELECT :employee_id, :first_name, :last_name, :email, :phone,
			d.id, g.id, j.id, u.id, CAST(:joining_date AS DATE), TRUE
		FROM departments d, designations g, job_types j, company_units u
		WHERE d.name = :department AND g.title = :designation
			AND j.type_name = :job_type AND u.unit_name = :unit
		ON CONFLICT DO NOTHING`, e); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.EmployeeID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE employees e SET manager_id = m.id
		FROM employees m
		WHERE m.employee_id = 'EMP-0001' AND e.employee_id = 'EMP-0002' AND e.manager_id IS NULL`); err != nil {
		return fmt.Errorf("seed managers: %w", err)
	}

	return tx.Commit()
}
