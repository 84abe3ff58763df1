package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks field rules, then the cross-references: unique section
// ids, unique story names per section and icon references that resolve.
func (c *Catalog) Validate() error {
	if c == nil {
		return &ValidationError{Field: "catalog", Message: "catalog is nil"}
	}
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	sections := make(map[string]int, len(c.Sections))
	for i, section := range c.Sections {
		if prev, exists := sections[section.ID]; exists {
			return &ValidationError{
				Field:   fmt.Sprintf("sections[%d].id", i),
				Message: fmt.Sprintf("duplicate section id %q (first at sections[%d])", section.ID, prev),
			}
		}
		sections[section.ID] = i

		stories := make(map[string]struct{}, len(section.Stories))
		for j, story := range section.Stories {
			field := fmt.Sprintf("sections[%d].stories[%d]", i, j)
			slug := story.Slug()
			if slug == "" {
				return &ValidationError{Field: field + ".name", Message: fmt.Sprintf("name %q has no usable characters", story.Name)}
			}
			if _, exists := stories[slug]; exists {
				return &ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate story %q", story.Name)}
			}
			stories[slug] = struct{}{}

			for key, value := range story.Props {
				name, ok := iconRef(value)
				if !ok {
					continue
				}
				if _, found := c.Icons[name]; !found {
					return &ValidationError{Field: field + ".props." + key, Message: fmt.Sprintf("unknown icon %q", name)}
				}
			}
		}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed validation for tag '%s'", ve.Tag()),
			Err:     err,
		}
	}
	return &ValidationError{Field: "catalog", Message: err.Error(), Err: err}
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
