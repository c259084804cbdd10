package employeerepo

import (
	"context"
	"errors"
	"fmt"

	"staffhub/internal/structs"
	"staffhub/pkg/db"
	"staffhub/pkg/logger"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

const employeeColumns = `
	id,
	first_name,
	middle_name,
	last_name,
	email,
	mobile_number,
	residential_address,
	contract_type,
	employment_type,
	start_date,
	finish_date,
	ongoing,
	salary,
	hours_per_week,
	created_at,
	updated_at
`

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		Create(ctx context.Context, emp structs.Employee) (structs.Employee, error)
		GetById(ctx context.Context, id int64) (structs.Employee, error)
		GetAll(ctx context.Context, req structs.GetListEmployeeRequest) ([]structs.Employee, error)
		Search(ctx context.Context, keyword string) ([]structs.Employee, error)
		ExistsByEmail(ctx context.Context, email string) (bool, error)
		Update(ctx context.Context, emp structs.Employee) (structs.Employee, error)
		Delete(ctx context.Context, id int64) error
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

func (r repo) Create(ctx context.Context, emp structs.Employee) (structs.Employee, error) {
	var (
		query = `
			INSERT INTO "employees"(
				first_name,
				middle_name,
				last_name,
				email,
				mobile_number,
				residential_address,
				contract_type,
				employment_type,
				start_date,
				finish_date,
				ongoing,
				salary,
				hours_per_week
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id
		`
		id int64
	)

	err := r.db.QueryRow(ctx, query,
		emp.FirstName,
		emp.MiddleName,
		emp.LastName,
		emp.Email,
		emp.MobileNumber,
		emp.ResidentialAddress,
		string(emp.ContractType),
		string(emp.EmploymentType),
		emp.StartDate,
		emp.FinishDate,
		emp.Ongoing,
		emp.Salary,
		emp.HoursPerWeek,
	).Scan(&id)
	if err != nil {
		pgErr := &pgconn.PgError{}
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.Employee{}, structs.ErrDuplicateEmail
		}
		return structs.Employee{}, err
	}

	return r.GetById(ctx, id)
}

func (r repo) GetById(ctx context.Context, id int64) (structs.Employee, error) {
	var (
		resp  structs.Employee
		query = `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE id = $1
		`
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&resp.Id,
		&resp.FirstName,
		&resp.MiddleName,
		&resp.LastName,
		&resp.Email,
		&resp.MobileNumber,
		&resp.ResidentialAddress,
		&resp.ContractType,
		&resp.EmploymentType,
		&resp.StartDate,
		&resp.FinishDate,
		&resp.Ongoing,
		&resp.Salary,
		&resp.HoursPerWeek,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Employee{}, structs.ErrNotFound
		}
		return structs.Employee{}, err
	}

	return resp, nil
}

func (r repo) GetAll(ctx context.Context, req structs.GetListEmployeeRequest) ([]structs.Employee, error) {
	var (
		query = `
			SELECT ` + employeeColumns + `
			FROM employees
		`
		where = " WHERE TRUE"
		sort  = " ORDER BY last_name ASC, id ASC"
		args  []interface{}
	)

	if req.EmploymentType != nil {
		args = append(args, string(*req.EmploymentType))
		where += fmt.Sprintf(" AND employment_type = $%d", len(args))
	}
	if req.ContractType != nil {
		args = append(args, string(*req.ContractType))
		where += fmt.Sprintf(" AND contract_type = $%d", len(args))
	}
	if len(req.Keyword) > 0 {
		args = append(args, "%"+req.Keyword+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n)
	}

	query += where + sort

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resp []structs.Employee
	for rows.Next() {
		var employee structs.Employee
		err = rows.Scan(
			&employee.Id,
			&employee.FirstName,
			&employee.MiddleName,
			&employee.LastName,
			&employee.Email,
			&employee.MobileNumber,
			&employee.ResidentialAddress,
			&employee.ContractType,
			&employee.EmploymentType,
			&employee.StartDate,
			&employee.FinishDate,
			&employee.Ongoing,
			&employee.Salary,
			&employee.HoursPerWeek,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp = append(resp, employee)
	}
	return resp, rows.Err()
}

func (r repo) Search(ctx context.Context, keyword string) ([]structs.Employee, error) {
	return r.GetAll(ctx, structs.GetListEmployeeRequest{Keyword: keyword})
}

func (r repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r repo) Update(ctx context.Context, emp structs.Employee) (structs.Employee, error) {
	query := `
		UPDATE "employees"
		SET first_name = $2,
			middle_name = $3,
			last_name = $4,
			email = $5,
			mobile_number = $6,
			residential_address = $7,
			contract_type = $8,
			employment_type = $9,
			start_date = $10,
			finish_date = $11,
			ongoing = $12,
			salary = $13,
			hours_per_week = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		emp.Id,
		emp.FirstName,
		emp.MiddleName,
		emp.LastName,
		emp.Email,
		emp.MobileNumber,
		emp.ResidentialAddress,
		string(emp.ContractType),
		string(emp.EmploymentType),
		emp.StartDate,
		emp.FinishDate,
		emp.Ongoing,
		emp.Salary,
		emp.HoursPerWeek,
	)
	if err != nil {
		pgErr := &pgconn.PgError{}
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.Employee{}, structs.ErrDuplicateEmail
		}
		return structs.Employee{}, err
	}
	if tag.RowsAffected() == 0 {
		return structs.Employee{}, structs.ErrNotFound
	}

	return r.GetById(ctx, emp.Id)
}

func (r repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "employees" WHERE "id" = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}
