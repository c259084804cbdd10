package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staffhub/internal/structs"
	"staffhub/pkg/logger"
	employeeRepo "staffhub/pkg/repository/postgres/employee_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		EmployeeRepo employeeRepo.Repo
		Logger       logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateEmployee) (structs.EmployeeView, error)
		GetById(ctx context.Context, id int64) (structs.EmployeeView, error)
		GetAll(ctx context.Context, req structs.GetListEmployeeRequest) ([]structs.EmployeeView, error)
		Search(ctx context.Context, keyword string) ([]structs.EmployeeView, error)
		Patch(ctx context.Context, id int64, updates map[string]interface{}) (structs.EmployeeView, error)
		Delete(ctx context.Context, id int64) error
	}

	service struct {
		employeeRepo employeeRepo.Repo
		logger       logger.Logger
		now          func() time.Time
	}
)

func New(p Params) Service {
	return &service{
		employeeRepo: p.EmployeeRepo,
		logger:       p.Logger,
		now:          time.Now,
	}
}

func (s service) Create(ctx context.Context, req structs.CreateEmployee) (structs.EmployeeView, error) {
	emp, err := buildEmployee(req)
	if err != nil {
		return structs.EmployeeView{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, emp.Email)
	if err != nil {
		s.logger.Error(ctx, "->employeeRepo.ExistsByEmail", zap.Error(err))
		return structs.EmployeeView{}, err
	}
	if exists {
		return structs.EmployeeView{}, fmt.Errorf("%w: %s", structs.ErrDuplicateEmail, emp.Email)
	}

	if emp.FinishDate != nil && emp.StartDate.After(*emp.FinishDate) {
		return structs.EmployeeView{}, structs.ErrInvalidDateRange
	}

	if err := Validate(emp); err != nil {
		return structs.EmployeeView{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, structs.ErrDuplicateEmail) {
			return structs.EmployeeView{}, err
		}
		s.logger.Error(ctx, "->employeeRepo.Create", zap.Error(err))
		return structs.EmployeeView{}, err
	}

	return BuildView(created, s.now()), nil
}

func (s service) GetById(ctx context.Context, id int64) (structs.EmployeeView, error) {
	emp, err := s.employeeRepo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.EmployeeView{}, err
		}
		s.logger.Error(ctx, "->employeeRepo.GetById", zap.Error(err))
		return structs.EmployeeView{}, err
	}
	return BuildView(emp, s.now()), nil
}

func (s service) GetAll(ctx context.Context, req structs.GetListEmployeeRequest) ([]structs.EmployeeView, error) {
	list, err := s.employeeRepo.GetAll(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->employeeRepo.GetAll", zap.Error(err))
		return nil, err
	}
	return s.buildViews(list), nil
}

func (s service) Search(ctx context.Context, keyword string) ([]structs.EmployeeView, error) {
	list, err := s.employeeRepo.Search(ctx, strings.ToLower(keyword))
	if err != nil {
		s.logger.Error(ctx, "->employeeRepo.Search", zap.Error(err))
		return nil, err
	}
	return s.buildViews(list), nil
}

// Patch applies a merge-style update: every supplied key is resolved through
// the closed applier table against an in-memory copy, the merged record is
// re-validated as a whole, and only then persisted. A failure on any key
// leaves the stored record untouched.
func (s service) Patch(ctx context.Context, id int64, updates map[string]interface{}) (structs.EmployeeView, error) {
	existing, err := s.employeeRepo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.EmployeeView{}, err
		}
		s.logger.Error(ctx, "->employeeRepo.GetById", zap.Error(err))
		return structs.EmployeeView{}, err
	}

	merged := existing
	for key, value := range updates {
		applier, ok := patchAppliers[key]
		if !ok {
			return structs.EmployeeView{}, fmt.Errorf("field '%s': %w", key, structs.ErrUnknownField)
		}
		if err := applier(&merged, value); err != nil {
			return structs.EmployeeView{}, fmt.Errorf("field '%s': %w", key, err)
		}
	}

	if merged.FinishDate != nil && merged.StartDate.After(*merged.FinishDate) {
		return structs.EmployeeView{}, structs.ErrInvalidDateRange
	}

	if err := Validate(merged); err != nil {
		return structs.EmployeeView{}, err
	}

	if merged.Email != existing.Email {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, merged.Email)
		if err != nil {
			s.logger.Error(ctx, "->employeeRepo.ExistsByEmail", zap.Error(err))
			return structs.EmployeeView{}, err
		}
		if exists {
			return structs.EmployeeView{}, fmt.Errorf("%w: %s", structs.ErrDuplicateEmail, merged.Email)
		}
	}

	updated, err := s.employeeRepo.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) || errors.Is(err, structs.ErrDuplicateEmail) {
			return structs.EmployeeView{}, err
		}
		s.logger.Error(ctx, "->employeeRepo.Update", zap.Error(err))
		return structs.EmployeeView{}, err
	}

	return BuildView(updated, s.now()), nil
}

func (s service) Delete(ctx context.Context, id int64) error {
	emp, err := s.employeeRepo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->employeeRepo.GetById", zap.Error(err))
		return err
	}

	if emp.Ongoing {
		return structs.ErrCannotDeleteOngoing
	}

	err = s.employeeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->employeeRepo.Delete", zap.Error(err))
		return err
	}
	return nil
}

func (s service) buildViews(list []structs.Employee) []structs.EmployeeView {
	now := s.now()
	views := make([]structs.EmployeeView, 0, len(list))
	for _, emp := range list {
		views = append(views, BuildView(emp, now))
	}
	return views
}

func buildEmployee(req structs.CreateEmployee) (structs.Employee, error) {
	startDate, err := time.Parse(structs.DateLayout, req.StartDate)
	if err != nil {
		return structs.Employee{}, fmt.Errorf("field 'startDate': %w", structs.ErrInvalidDateFormat)
	}

	var finishDate *time.Time
	if req.FinishDate != nil {
		parsed, err := time.Parse(structs.DateLayout, *req.FinishDate)
		if err != nil {
			return structs.Employee{}, fmt.Errorf("field 'finishDate': %w", structs.ErrInvalidDateFormat)
		}
		finishDate = &parsed
	}

	return structs.Employee{
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Email:              req.Email,
		MobileNumber:       req.MobileNumber,
		ResidentialAddress: req.ResidentialAddress,
		ContractType:       structs.ContractType(req.ContractType),
		EmploymentType:     structs.EmploymentType(req.EmploymentType),
		StartDate:          startDate,
		FinishDate:         finishDate,
		Ongoing:            req.Ongoing,
		Salary:             req.Salary,
		HoursPerWeek:       req.HoursPerWeek,
	}, nil
}
