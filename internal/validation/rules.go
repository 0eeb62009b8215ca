package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern     = regexp.MustCompile(`^(\+91[-\s]?)?[6-9]\d{9}$`)
	skillNamePattern = regexp.MustCompile(`^[A-Z][a-z]*( [A-Z][a-z]*)*$`)
)

func registerRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation tag %q: %v", tag, err))
		}
	}

	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister("skillname", func(fl validator.FieldLevel) bool {
		return skillNamePattern.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(registerBio, RegisterInput{})
}

// registerBio requires a non-blank bio from jobseekers.
func registerBio(sl validator.StructLevel) {
	in := sl.Current().Interface().(RegisterInput)
	if in.Role != "jobseeker" {
		return
	}
	if in.Bio == nil || strings.TrimSpace(*in.Bio) == "" {
		sl.ReportError(in.Bio, "bio", "Bio", "required_for_jobseeker", "")
	}
}
