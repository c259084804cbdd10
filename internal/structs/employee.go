package structs

import "time"

const DateLayout = "2006-01-02"

type ContractType string

const (
	ContractPermanent ContractType = "PERMANENT"
	ContractContract  ContractType = "CONTRACT"
	ContractCasual    ContractType = "CASUAL"
)

func (t ContractType) Valid() bool {
	switch t {
	case ContractPermanent, ContractContract, ContractCasual:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime:
		return true
	}
	return false
}

type Employee struct {
	Id                 int64          `json:"id"`
	FirstName          string         `json:"firstName" validate:"required,max=100"`
	MiddleName         *string        `json:"middleName"`
	LastName           string         `json:"lastName" validate:"required,max=100"`
	Email              string         `json:"email" validate:"required,email,max=100"`
	MobileNumber       string         `json:"mobileNumber" validate:"required,au_mobile"`
	ResidentialAddress *string        `json:"residentialAddress"`
	ContractType       ContractType   `json:"contractType" validate:"required,contract_type"`
	EmploymentType     EmploymentType `json:"employmentType" validate:"required,employment_type"`
	StartDate          time.Time      `json:"startDate" validate:"required"`
	FinishDate         *time.Time     `json:"finishDate"`
	Ongoing            bool           `json:"ongoing"`
	Salary             float64        `json:"salary" validate:"required,gt=0"`
	HoursPerWeek       *int32         `json:"hoursPerWeek" validate:"omitempty,gt=0"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          *time.Time     `json:"updated_at"`
}

type CreateEmployee struct {
	FirstName          string  `json:"firstName"`
	MiddleName         *string `json:"middleName"`
	LastName           string  `json:"lastName"`
	Email              string  `json:"email"`
	MobileNumber       string  `json:"mobileNumber"`
	ResidentialAddress *string `json:"residentialAddress"`
	ContractType       string  `json:"contractType"`
	EmploymentType     string  `json:"employmentType"`
	StartDate          string  `json:"startDate"`
	FinishDate         *string `json:"finishDate"`
	Ongoing            bool    `json:"ongoing"`
	Salary             float64 `json:"salary"`
	HoursPerWeek       *int32  `json:"hoursPerWeek"`
}

// EmployeeView is the client-facing projection of an employee. The two derived
// booleans are computed at read time and never persisted.
type EmployeeView struct {
	Id                 int64          `json:"id"`
	FirstName          string         `json:"firstName"`
	MiddleName         *string        `json:"middleName"`
	LastName           string         `json:"lastName"`
	Email              string         `json:"email"`
	MobileNumber       string         `json:"mobileNumber"`
	ResidentialAddress *string        `json:"residentialAddress"`
	ContractType       ContractType   `json:"contractType"`
	EmploymentType     EmploymentType `json:"employmentType"`
	StartDate          string         `json:"startDate"`
	FinishDate         *string        `json:"finishDate"`
	Ongoing            bool           `json:"ongoing"`
	Salary             float64        `json:"salary"`
	HoursPerWeek       *int32         `json:"hoursPerWeek"`
	OnProbation        bool           `json:"onProbation"`
	HasWorkAnniversary bool           `json:"hasWorkAnniversary"`
}

type GetListEmployeeRequest struct {
	EmploymentType *EmploymentType
	ContractType   *ContractType
	Keyword        string
}
