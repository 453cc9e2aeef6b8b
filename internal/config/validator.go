package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/designsystem/internal/ui/components"
	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	columnIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("column_id", func(fl validator.FieldLevel) bool {
			return columnIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("badge_variant", func(fl validator.FieldLevel) bool {
			_, err := components.ParseBadgeVariant(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return dserrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Columns))
	for i, col := range doc.Columns {
		if first, exists := seen[col.ID]; exists {
			return dserrors.NewValidationError(fieldForColumn(i, "id"), fmt.Sprintf("duplicate column id %q, first used by columns[%d]", col.ID, first), nil)
		}
		seen[col.ID] = i

		if col.Cell != nil && col.Cell.Format != "badge" && (len(col.Cell.Badges) > 0 || col.Cell.DefaultBadge != "") {
			return dserrors.NewValidationError(fieldForColumn(i, "cell.badges"), "badge variants require format badge", nil)
		}
		if strings.HasPrefix(col.Accessor, ".") || strings.HasSuffix(col.Accessor, ".") || strings.Contains(col.Accessor, "..") {
			return dserrors.NewValidationError(fieldForColumn(i, "accessor"), fmt.Sprintf("malformed path %q", col.Accessor), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return dserrors.NewValidationError(field, msg, err)
	}

	return dserrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns "Document.columns[0].id" into "columns[0].id".
func yamlishFieldName(fe validator.FieldError) string {
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return strings.ToLower(fe.Namespace())
	}
	return field
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("columns[%d].%s", index, field)
}
