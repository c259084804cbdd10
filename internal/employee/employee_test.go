package employee

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"staffhub/internal/structs"
	"staffhub/pkg/logger"
)

type fakeEmployeeRepo struct {
	employees   map[int64]structs.Employee
	sequence    int64
	lastKeyword string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]structs.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp structs.Employee) (structs.Employee, error) {
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return structs.Employee{}, structs.ErrDuplicateEmail
		}
	}
	r.sequence++
	emp.Id = r.sequence
	emp.CreatedAt = time.Now()
	r.employees[emp.Id] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetById(_ context.Context, id int64) (structs.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return structs.Employee{}, structs.ErrNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context, req structs.GetListEmployeeRequest) ([]structs.Employee, error) {
	var list []structs.Employee
	for _, emp := range r.employees {
		if req.EmploymentType != nil && emp.EmploymentType != *req.EmploymentType {
			continue
		}
		if req.ContractType != nil && emp.ContractType != *req.ContractType {
			continue
		}
		if req.Keyword != "" && !matchesKeyword(emp, req.Keyword) {
			continue
		}
		list = append(list, emp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].LastName != list[j].LastName {
			return list[i].LastName < list[j].LastName
		}
		return list[i].Id < list[j].Id
	})
	return list, nil
}

func (r *fakeEmployeeRepo) Search(ctx context.Context, keyword string) ([]structs.Employee, error) {
	r.lastKeyword = keyword
	return r.GetAll(ctx, structs.GetListEmployeeRequest{Keyword: keyword})
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp structs.Employee) (structs.Employee, error) {
	if _, ok := r.employees[emp.Id]; !ok {
		return structs.Employee{}, structs.ErrNotFound
	}
	r.employees[emp.Id] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return structs.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func matchesKeyword(emp structs.Employee, keyword string) bool {
	kw := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(emp.FirstName), kw) ||
		strings.Contains(strings.ToLower(emp.LastName), kw) ||
		strings.Contains(strings.ToLower(emp.Email), kw)
}

var testNow = time.Date(2023, time.April, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeEmployeeRepo) service {
	return service{
		employeeRepo: repo,
		logger:       logger.New("error"),
		now:          func() time.Time { return testNow },
	}
}

func validCreateRequest() structs.CreateEmployee {
	return structs.CreateEmployee{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		MobileNumber:   "+61412345678",
		ContractType:   "PERMANENT",
		EmploymentType: "FULL_TIME",
		StartDate:      "2023-01-10",
		Salary:         90000,
	}
}

func mustCreate(t *testing.T, s service, req structs.CreateEmployee) structs.EmployeeView {
	t.Helper()
	view, err := s.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return view
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	first := mustCreate(t, s, validCreateRequest())
	if first.Id == 0 {
		t.Fatalf("expected non-zero id, got %d", first.Id)
	}

	second := validCreateRequest()
	second.Email = "grace@example.com"
	second.LastName = "Hopper"
	created := mustCreate(t, s, second)
	if created.Id == first.Id {
		t.Fatalf("expected distinct ids, both were %d", first.Id)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())
	mustCreate(t, s, validCreateRequest())

	dup := validCreateRequest()
	dup.FirstName = "Someone"
	dup.LastName = "Else"
	_, err := s.Create(context.Background(), dup)
	if !errors.Is(err, structs.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_InvalidDateRange(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	req := validCreateRequest()
	finish := "2022-12-31"
	req.FinishDate = &finish
	_, err := s.Create(context.Background(), req)
	if !errors.Is(err, structs.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCreate_InvalidStartDateFormat(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.StartDate = "10/01/2023"
	_, err := s.Create(context.Background(), req)
	if !errors.Is(err, structs.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestCreate_ValidationFailureListsAllViolations(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.LastName = ""
	req.Salary = 0
	_, err := s.Create(context.Background(), req)

	var vErr *structs.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.Violations["lastName"]; !ok {
		t.Fatalf("expected lastName violation, got %v", vErr.Violations)
	}
	if _, ok := vErr.Violations["salary"]; !ok {
		t.Fatalf("expected salary violation, got %v", vErr.Violations)
	}
}

func TestPatch_CoercesNumericString(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	view, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"salary": "95000"})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if view.Salary != 95000 {
		t.Fatalf("expected salary 95000, got %v", view.Salary)
	}

	stored, _ := repo.GetById(context.Background(), created.Id)
	if stored.Salary != 95000 {
		t.Fatalf("expected persisted salary 95000, got %v", stored.Salary)
	}
}

func TestPatch_RejectsWrongTypedValues(t *testing.T) {
	cases := []struct {
		name    string
		updates map[string]interface{}
	}{
		{"boolean salary", map[string]interface{}{"salary": true}},
		{"non-numeric salary string", map[string]interface{}{"salary": "lots"}},
		{"numeric first name", map[string]interface{}{"firstName": float64(123)}},
		{"boolean email", map[string]interface{}{"email": false}},
		{"fractional hours", map[string]interface{}{"hoursPerWeek": 37.5}},
		{"boolean hours", map[string]interface{}{"hoursPerWeek": true}},
		{"numeric middle name", map[string]interface{}{"middleName": float64(7)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeEmployeeRepo()
			s := newTestService(repo)
			created := mustCreate(t, s, validCreateRequest())

			_, err := s.Patch(context.Background(), created.Id, tc.updates)
			if !errors.Is(err, structs.ErrInvalidFieldValue) {
				t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
			}

			stored, _ := repo.GetById(context.Background(), created.Id)
			if stored.FirstName != "Ada" || stored.Salary != 90000 || stored.HoursPerWeek != nil {
				t.Fatalf("record changed after rejected patch: %+v", stored)
			}
		})
	}
}

func TestPatch_AcceptsIntegralHours(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	view, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"hoursPerWeek": float64(38)})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if view.HoursPerWeek == nil || *view.HoursPerWeek != 38 {
		t.Fatalf("expected hoursPerWeek 38, got %v", view.HoursPerWeek)
	}
}

func TestPatch_UnknownFieldLeavesRecordUnchanged(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"nickname": "Countess"})
	if !errors.Is(err, structs.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	stored, _ := repo.GetById(context.Background(), created.Id)
	if stored.FirstName != "Ada" || stored.Salary != 90000 {
		t.Fatalf("record changed after failed patch: %+v", stored)
	}
}

func TestPatch_InvalidEnumValue(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"contractType": "BOGUS"})
	if !errors.Is(err, structs.ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
	}

	stored, _ := repo.GetById(context.Background(), created.Id)
	if stored.ContractType != structs.ContractPermanent {
		t.Fatalf("contract type changed after failed patch: %s", stored.ContractType)
	}
}

func TestPatch_InvalidDateFormat(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())
	created := mustCreate(t, s, validCreateRequest())

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"startDate": "January 10"})
	if !errors.Is(err, structs.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestPatch_ValidationFailureIsAllOrNothing(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{
		"firstName": "Augusta",
		"salary":    float64(0),
	})

	var vErr *structs.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	stored, _ := repo.GetById(context.Background(), created.Id)
	if stored.FirstName != "Ada" || stored.Salary != 90000 {
		t.Fatalf("partial write detected: %+v", stored)
	}
}

func TestPatch_DuplicateEmail(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())
	mustCreate(t, s, validCreateRequest())

	second := validCreateRequest()
	second.Email = "grace@example.com"
	created := mustCreate(t, s, second)

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"email": "ada@example.com"})
	if !errors.Is(err, structs.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestPatch_DateRangeViolation(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())
	created := mustCreate(t, s, validCreateRequest())

	_, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"finishDate": "2022-06-01"})
	if !errors.Is(err, structs.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestPatch_NotFound(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	_, err := s.Patch(context.Background(), 42, map[string]interface{}{"salary": 100000})
	if !errors.Is(err, structs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_OngoingIsBlocked(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	created := mustCreate(t, s, validCreateRequest())

	if _, err := s.Patch(context.Background(), created.Id, map[string]interface{}{"ongoing": true}); err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}

	err := s.Delete(context.Background(), created.Id)
	if !errors.Is(err, structs.ErrCannotDeleteOngoing) {
		t.Fatalf("expected ErrCannotDeleteOngoing, got %v", err)
	}

	if _, err := s.GetById(context.Background(), created.Id); err != nil {
		t.Fatalf("record should remain retrievable, got %v", err)
	}
}

func TestDelete_ThenGetByIdFails(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())
	created := mustCreate(t, s, validCreateRequest())

	if err := s.Delete(context.Background(), created.Id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err := s.GetById(context.Background(), created.Id)
	if !errors.Is(err, structs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Delete(context.Background(), created.Id); !errors.Is(err, structs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSearch_LowercasesKeyword(t *testing.T) {
	repo := newFakeEmployeeRepo()
	s := newTestService(repo)
	mustCreate(t, s, validCreateRequest())

	list, err := s.Search(context.Background(), "ADA")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastKeyword != "ada" {
		t.Fatalf("expected lowercased keyword, repo saw %q", repo.lastKeyword)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 match, got %d", len(list))
	}
}

func TestGetAll_FilterComposition(t *testing.T) {
	s := newTestService(newFakeEmployeeRepo())

	fullPermanent := validCreateRequest()
	mustCreate(t, s, fullPermanent)

	partCasual := validCreateRequest()
	partCasual.Email = "grace@example.com"
	partCasual.LastName = "Hopper"
	partCasual.EmploymentType = "PART_TIME"
	partCasual.ContractType = "CASUAL"
	mustCreate(t, s, partCasual)

	fullCasual := validCreateRequest()
	fullCasual.Email = "edsger@example.com"
	fullCasual.LastName = "Dijkstra"
	fullCasual.ContractType = "CASUAL"
	mustCreate(t, s, fullCasual)

	et := structs.EmploymentFullTime
	ct := structs.ContractCasual

	both, err := s.GetAll(context.Background(), structs.GetListEmployeeRequest{EmploymentType: &et, ContractType: &ct})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(both) != 1 || both[0].LastName != "Dijkstra" {
		t.Fatalf("expected only Dijkstra for FULL_TIME+CASUAL, got %+v", both)
	}

	onlyType, err := s.GetAll(context.Background(), structs.GetListEmployeeRequest{EmploymentType: &et})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(onlyType) != 2 {
		t.Fatalf("expected 2 FULL_TIME employees, got %d", len(onlyType))
	}

	all, err := s.GetAll(context.Background(), structs.GetListEmployeeRequest{})
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected full list, got %d", len(all))
	}
	// last-name ascending
	if all[0].LastName != "Dijkstra" || all[1].LastName != "Hopper" || all[2].LastName != "Lovelace" {
		t.Fatalf("unexpected order: %s, %s, %s", all[0].LastName, all[1].LastName, all[2].LastName)
	}
}
