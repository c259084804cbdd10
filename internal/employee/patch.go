package employee

import (
	"math"
	"time"

	"staffhub/internal/structs"

	"github.com/spf13/cast"
)

// fieldApplier coerces a raw patch value and writes it onto the in-memory
// copy of the record. Appliers never touch the persisted row.
type fieldApplier func(emp *structs.Employee, value interface{}) error

// patchAppliers is the closed set of patchable fields. A key outside this
// table fails the whole patch with ErrUnknownField; id is deliberately absent.
var patchAppliers = map[string]fieldApplier{
	"firstName": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		emp.FirstName = s
		return nil
	},
	"middleName": func(emp *structs.Employee, value interface{}) error {
		return applyOptionalString(&emp.MiddleName, value)
	},
	"lastName": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		emp.LastName = s
		return nil
	},
	"email": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		emp.Email = s
		return nil
	},
	"mobileNumber": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		emp.MobileNumber = s
		return nil
	},
	"residentialAddress": func(emp *structs.Employee, value interface{}) error {
		return applyOptionalString(&emp.ResidentialAddress, value)
	},
	"contractType": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		ct := structs.ContractType(s)
		if !ct.Valid() {
			return structs.ErrInvalidEnumValue
		}
		emp.ContractType = ct
		return nil
	},
	"employmentType": func(emp *structs.Employee, value interface{}) error {
		s, err := applyString(value)
		if err != nil {
			return err
		}
		et := structs.EmploymentType(s)
		if !et.Valid() {
			return structs.ErrInvalidEnumValue
		}
		emp.EmploymentType = et
		return nil
	},
	"startDate": func(emp *structs.Employee, value interface{}) error {
		parsed, err := applyDate(value)
		if err != nil {
			return err
		}
		emp.StartDate = *parsed
		return nil
	},
	"finishDate": func(emp *structs.Employee, value interface{}) error {
		if value == nil {
			emp.FinishDate = nil
			return nil
		}
		parsed, err := applyDate(value)
		if err != nil {
			return err
		}
		emp.FinishDate = parsed
		return nil
	},
	"ongoing": func(emp *structs.Employee, value interface{}) error {
		b, ok := value.(bool)
		if !ok {
			return structs.ErrInvalidFieldValue
		}
		emp.Ongoing = b
		return nil
	},
	"salary": func(emp *structs.Employee, value interface{}) error {
		f, err := applyFloat64(value)
		if err != nil {
			return err
		}
		emp.Salary = f
		return nil
	},
	"hoursPerWeek": func(emp *structs.Employee, value interface{}) error {
		if value == nil {
			emp.HoursPerWeek = nil
			return nil
		}
		n, err := applyInt32(value)
		if err != nil {
			return err
		}
		emp.HoursPerWeek = &n
		return nil
	},
}

// Only a JSON string is acceptable for a string field; cast would also coerce
// numbers and booleans, which must fail instead.
func applyString(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", structs.ErrInvalidFieldValue
	}
	return s, nil
}

func applyOptionalString(dst **string, value interface{}) error {
	if value == nil {
		*dst = nil
		return nil
	}
	s, err := applyString(value)
	if err != nil {
		return err
	}
	*dst = &s
	return nil
}

// Numeric fields take a JSON number or a numeric string; anything else,
// booleans included, is a coercion failure.
func applyFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, structs.ErrInvalidFieldValue
		}
		return f, nil
	}
	return 0, structs.ErrInvalidFieldValue
}

func applyInt32(value interface{}) (int32, error) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, structs.ErrInvalidFieldValue
		}
		return int32(v), nil
	case string:
		n, err := cast.ToInt32E(v)
		if err != nil {
			return 0, structs.ErrInvalidFieldValue
		}
		return n, nil
	}
	return 0, structs.ErrInvalidFieldValue
}

func applyDate(value interface{}) (*time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return nil, structs.ErrInvalidFieldValue
	}
	parsed, err := time.Parse(structs.DateLayout, s)
	if err != nil {
		return nil, structs.ErrInvalidDateFormat
	}
	return &parsed, nil
}
