package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// ValidationError describes the first problem found in a catalog.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Field, e.Message)
}

// Validate checks field constraints and that ids are unique within each
// collection.
func (c *Catalog) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	collections := []struct {
		name string
		ids  []int
	}{
		{"experience", idsOf(c.Experience, func(e ExperienceEntry) int { return e.ID })},
		{"projects", idsOf(c.Projects, func(p ProjectEntry) int { return p.ID })},
		{"certifications", idsOf(c.Certifications, func(e CertificationEntry) int { return e.ID })},
		{"education", idsOf(c.Education, func(e EducationEntry) int { return e.ID })},
		{"testimonials", idsOf(c.Testimonials, func(t Testimonial) int { return t.ID })},
	}
	for _, col := range collections {
		seen := make(map[int]struct{}, len(col.ids))
		for i, id := range col.ids {
			if _, dup := seen[id]; dup {
				return &ValidationError{
					Field:   fmt.Sprintf("%s[%d].id", col.name, i),
					Message: fmt.Sprintf("duplicate id %d", id),
				}
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) int) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := strings.ToLower(strings.TrimPrefix(fe.StructNamespace(), "Catalog."))
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed validation for tag '%s'", fe.Tag()),
		}
	}
	return &ValidationError{Field: "catalog", Message: err.Error()}
}
