package business

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/dto"
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// normalizeRequest trims every field and applies the default department
func normalizeRequest(req *dto.SubmitFeedbackRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.Message = strings.TrimSpace(req.Message)

	if req.Department == "" {
		req.Department = dto.DefaultDepartment
	}
}

// validateRequest reports the first failing field as a ValidationError
func validateRequest(req *dto.SubmitFeedbackRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return pkgerrors.NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return pkgerrors.NewValidationErrorf("%s is required", fe.Field())
	case "email":
		return pkgerrors.NewValidationErrorf("%s must be a valid email address", fe.Field())
	case "max":
		return pkgerrors.NewValidationErrorf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return pkgerrors.NewValidationErrorf("%s must be one of: %s", fe.Field(), strings.Join(dto.Departments, ", "))
	default:
		return pkgerrors.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
