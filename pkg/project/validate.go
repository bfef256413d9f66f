package project

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const minCollectionNameLen = 2

var (
	collectionPartPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]*$`)
	pluginNamePattern     = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("fqcn", func(fl validator.FieldLevel) bool {
		return ValidateCollectionName(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("plugin_name", func(fl validator.FieldLevel) bool {
		return pluginNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateCollectionName checks a "<namespace>.<name>" pair.
func ValidateCollectionName(collection string) error {
	parts := strings.SplitN(collection, ".", 2)
	if len(parts) != 2 {
		return errors.New(errors.ErrInvalidInput, "Collection name must be in the format '<namespace>.<name>'.")
	}
	if !collectionPartPattern.MatchString(parts[0]) || !collectionPartPattern.MatchString(parts[1]) {
		return errors.New(errors.ErrInvalidInput,
			"Collection name can only contain lower case letters, underscores, and numbers and cannot begin with an underscore.")
	}
	if len(parts[0]) <= minCollectionNameLen || len(parts[1]) <= minCollectionNameLen {
		return errors.New(errors.ErrInvalidInput, "Both the collection namespace and name must be longer than 2 characters.")
	}
	return nil
}

// validateStruct runs the struct tags and turns failures into one
// ErrInvalidInput error.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(err, errors.ErrInternal, "validation failed")
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(errors.ErrInvalidInput, strings.Join(messages, "\n")).
		WithDetail("field", verrs[0].Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "fqcn":
		if err := ValidateCollectionName(fmt.Sprint(fe.Value())); err != nil {
			var se *errors.StampError
			if stderrors.As(err, &se) {
				return se.Message
			}
			return err.Error()
		}
	case "plugin_name":
		return fmt.Sprintf("Plugin name %q must start with a letter or underscore and contain only lower case letters, numbers and underscores.", fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", strings.ToLower(fe.Field()), fe.Tag())
}
