package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// Load reads a training plan from disk, validates it, and returns the resulting model.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, planerrors.NewParseError(path, err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, planerrors.NewParseError(path, err)
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate performs structural validation on a plan document. Optional fields are
// allowed to be absent; fields that are present must be well formed.
func Validate(p *Plan) error {
	if p == nil {
		return planerrors.NewValidationError("plan", "plan is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(p); err != nil {
		return convertValidationError(err)
	}

	for i, week := range p.Weeks {
		for key := range week.Days {
			if !isDayKey(key) {
				return planerrors.NewValidationError(
					fmt.Sprintf("weeks[%d].days.%s", i, key),
					fmt.Sprintf("unknown day key %q", key), nil)
			}
		}
	}

	return nil
}

// ValidateGenerated applies the stricter checks used on LLM output: required
// top-level sections, a minimum week count, and days on every week.
func ValidateGenerated(p *Plan) error {
	if err := Validate(p); err != nil {
		return err
	}

	if len(p.PaceZones) == 0 {
		return planerrors.NewValidationError("paceZones", "missing pace zones", nil)
	}
	if len(p.HRZones) == 0 {
		return planerrors.NewValidationError("hrZones", "missing heart rate zones", nil)
	}
	if len(p.Weeks) < 10 {
		return planerrors.NewValidationError("weeks", fmt.Sprintf("only %d weeks generated, expected at least 10", len(p.Weeks)), nil)
	}
	for i, week := range p.Weeks {
		if len(week.Days) == 0 {
			return planerrors.NewValidationError(fmt.Sprintf("weeks[%d].days", i), "week has no days", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into plansmith validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := jsonishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return planerrors.NewValidationError(field, msg, err)
	}

	return planerrors.NewValidationError("plan", err.Error(), err)
}

func jsonishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(part[:1])+part[1:])
	}
	return strings.Join(lowered, ".")
}

func isDayKey(key string) bool {
	for _, day := range DayOrder {
		if key == day {
			return true
		}
	}
	return false
}
