package employee

import (
	"time"

	"staffhub/internal/structs"
)

// Probation lasts six calendar months from the start date.
const probationMonths = 6

// OnProbation reports whether fewer than six months have elapsed since the
// start date. An employee whose finish date has already passed is never on
// probation.
func OnProbation(emp structs.Employee, now time.Time) bool {
	if emp.FinishDate != nil && now.After(*emp.FinishDate) {
		return false
	}
	return now.Before(emp.StartDate.AddDate(0, probationMonths, 0))
}

// HasWorkAnniversary reports whether the current month matches the start
// month after at least one full year of service.
func HasWorkAnniversary(emp structs.Employee, now time.Time) bool {
	return now.Month() == emp.StartDate.Month() && now.Year() > emp.StartDate.Year()
}

// BuildView projects an employee into its client-facing shape, attaching the
// two derived policy booleans.
func BuildView(emp structs.Employee, now time.Time) structs.EmployeeView {
	var finishDate *string
	if emp.FinishDate != nil {
		formatted := emp.FinishDate.Format(structs.DateLayout)
		finishDate = &formatted
	}

	return structs.EmployeeView{
		Id:                 emp.Id,
		FirstName:          emp.FirstName,
		MiddleName:         emp.MiddleName,
		LastName:           emp.LastName,
		Email:              emp.Email,
		MobileNumber:       emp.MobileNumber,
		ResidentialAddress: emp.ResidentialAddress,
		ContractType:       emp.ContractType,
		EmploymentType:     emp.EmploymentType,
		StartDate:          emp.StartDate.Format(structs.DateLayout),
		FinishDate:         finishDate,
		Ongoing:            emp.Ongoing,
		Salary:             emp.Salary,
		HoursPerWeek:       emp.HoursPerWeek,
		OnProbation:        OnProbation(emp, now),
		HasWorkAnniversary: HasWorkAnniversary(emp, now),
	}
}
