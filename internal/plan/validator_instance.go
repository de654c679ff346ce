package plan

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	pacePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

	phases = map[string]struct{}{
		"base": {}, "build": {}, "peak": {}, "taper": {}, "race": {},
	}

	workoutTypes = map[string]struct{}{
		"easy": {}, "long": {}, "tempo": {}, "intervals": {}, "fartlek": {},
		"hill_repeats": {}, "race_pace": {}, "rest": {}, "cross_training": {},
		"recovery": {}, "progression": {},
	}
)

// validatorInstance configures and returns the shared validator used across the plan package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("pace", func(fl validator.FieldLevel) bool {
			return pacePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("phase", func(fl validator.FieldLevel) bool {
			_, ok := phases[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("workout", func(fl validator.FieldLevel) bool {
			_, ok := workoutTypes[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
