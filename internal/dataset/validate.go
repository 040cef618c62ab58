package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// ErrInvalidDataset wraps every integrity violation reported by Validate.
var ErrInvalidDataset = errors.New("invalid dataset")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("importance", func(fl validator.FieldLevel) bool {
		return models.Importance(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks field rules and cross-record invariants. refYear bounds the
// milestones of living persons. All violations are reported together, joined
// under ErrInvalidDataset.
func Validate(people []models.Person, refYear int) error {
	if len(people) == 0 {
		return fmt.Errorf("%w: dataset has no people", ErrInvalidDataset)
	}

	var errs []error
	seen := make(map[string]bool, len(people))

	for i, p := range people {
		where := fmt.Sprintf("person[%d] %q", i, p.ID)

		if err := validate.Struct(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, formatValidationError(err)))
		}
		if p.ID != "" && seen[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate person id", where))
		}
		seen[p.ID] = true

		if p.BirthDate.IsZero() {
			errs = append(errs, fmt.Errorf("%s: birth date is required", where))
			continue
		}
		if p.DeathDate != nil && !p.DeathDate.After(p.BirthDate.Time) {
			errs = append(errs, fmt.Errorf("%s: death date %s is not after birth date %s", where, p.DeathDate, p.BirthDate))
		}
		errs = append(errs, validateMilestones(where, p, refYear)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
}

func validateMilestones(where string, p models.Person, refYear int) []error {
	var errs []error
	birth := p.BirthYear()
	seen := make(map[string]bool, len(p.Milestones))

	for _, m := range p.Milestones {
		mwhere := fmt.Sprintf("%s milestone %q", where, m.ID)
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s: milestone id is required", mwhere))
		} else if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate milestone id", mwhere))
		}
		seen[m.ID] = true

		if m.Year < birth {
			errs = append(errs, fmt.Errorf("%s: year %d is before birth year %d", mwhere, m.Year, birth))
		}
		switch {
		case p.DeathDate != nil && m.Year > p.DeathDate.Year():
			errs = append(errs, fmt.Errorf("%s: year %d is after death year %d", mwhere, m.Year, p.DeathDate.Year()))
		case p.DeathDate == nil && m.Year > refYear:
			errs = append(errs, fmt.Errorf("%s: year %d is after reference year %d", mwhere, m.Year, refYear))
		}
		if m.Age != m.Year-birth {
			errs = append(errs, fmt.Errorf("%s: age %d does not match year %d (want %d)", mwhere, m.Age, m.Year, m.Year-birth))
		}
	}
	return errs
}

// formatValidationError turns validator output into readable messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "category":
		return fmt.Sprintf("%s: unknown category %q", field, e.Value())
	case "importance":
		return fmt.Sprintf("%s: unknown importance %q", field, e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
