package scenario

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/ezBadminton/goqualifier/core"
	"github.com/go-playground/validator/v10"
)

// Struct level tags reported by the validations below
const (
	tagQualifiers = "qualifiers"
	tagNotEmpty   = "notempty"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("finite", isFinite)
	v.RegisterStructValidation(validateScenario, Scenario{})
	v.RegisterStructValidation(validateGroup, Group{})
	v.RegisterStructValidation(validateBracket, Bracket{})
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return false
}

func validateScenario(sl validator.StructLevel) {
	s := sl.Current().Interface().(Scenario)
	if len(s.Groups) == 0 && len(s.Brackets) == 0 && len(s.Paths) == 0 {
		sl.ReportError(s.Groups, "Groups", "Groups", tagNotEmpty, "")
	}
}

func validateGroup(sl validator.StructLevel) {
	g := sl.Current().Interface().(Group)
	if g.Qualifiers < 1 || g.Qualifiers > len(g.Teams) {
		sl.ReportError(g.Qualifiers, "Qualifiers", "Qualifiers", tagQualifiers, "")
	}
}

// The seeded team must not reappear among the unseeded
func validateBracket(sl validator.StructLevel) {
	b := sl.Current().Interface().(Bracket)
	codes := []string{b.Seeded.Code}
	for _, t := range b.Unseeded {
		if slices.Contains(codes, t.Code) {
			sl.ReportError(b.Unseeded, "Unseeded", "Unseeded", "unique", "Code")
			return
		}
		codes = append(codes, t.Code)
	}
}

// Maps the first failed validation onto the package's sentinel
// errors. The validator's error stays in the chain.
func translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	var sentinel error
	switch fe.Tag() {
	case "required":
		sentinel = ErrMissingName
		if fe.Field() == "Code" {
			sentinel = ErrMissingCode
		}
	case "unique":
		sentinel = ErrDuplicateCode
	case "finite":
		sentinel = ErrNonFiniteRating
	case "min":
		sentinel = core.ErrTooFewEntries
	case "len":
		sentinel = core.ErrEntrantCount
	case tagQualifiers:
		sentinel = ErrInvalidQualifier
	case tagNotEmpty:
		sentinel = ErrEmptyScenario
	default:
		return err
	}

	return fmt.Errorf("%w: %w", sentinel, validationErrors)
}
