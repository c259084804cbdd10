package employee

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"staffhub/internal/structs"

	"github.com/go-playground/validator/v10"
)

var auMobilePattern = regexp.MustCompile(`^\+61\s?\d{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("au_mobile", func(fl validator.FieldLevel) bool {
		return auMobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("contract_type", func(fl validator.FieldLevel) bool {
		return structs.ContractType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("employment_type", func(fl validator.FieldLevel) bool {
		return structs.EmploymentType(fl.Field().String()).Valid()
	})

	return v
}

// Validate runs the full entity constraint set and reports every violation.
// The same check runs at creation and after a patch merge.
func Validate(emp structs.Employee) error {
	err := validate.Struct(emp)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make(map[string][]string, len(vErrs))
	for _, fe := range vErrs {
		violations[fe.Field()] = append(violations[fe.Field()], constraintMessage(fe))
	}
	return &structs.ValidationError{Violations: violations}
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Cannot exceed " + fe.Param() + " characters"
	case "email":
		return "Invalid email format"
	case "au_mobile":
		return "Invalid Australian mobile number"
	case "contract_type", "employment_type":
		return fmt.Sprintf("Invalid value: %v", fe.Value())
	case "gt":
		return "Must be greater than " + fe.Param()
	}
	return "Invalid value"
}
