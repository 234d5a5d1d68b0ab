package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "hugely/internal/errors"
)

var (
	// newsLinkPattern accepts http(s) URLs or bare domain.tld/path strings. Only
	// the start of the value is matched.
	newsLinkPattern = regexp.MustCompile(`^(?:(http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*,]|(?:%[0-9a-fA-F][0-9a-fA-F]))+)|([a-zA-Z]+.\w+\.+[a-zA-Z0-9/_]+))`)
	// feedbackEmailPattern is a loose local@domain.tld check.
	feedbackEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+@[a-z0-9]+\.[a-z]+`)
)

var validate = newValidator()

// Validator returns the shared validator with the newslink and fbemail rules.
func Validator() *validator.Validate {
	return validate
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	_ = v.RegisterValidation("newslink", func(fl validator.FieldLevel) bool {
		return newsLinkPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("fbemail", func(fl validator.FieldLevel) bool {
		return feedbackEmailPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct runs the struct tags of in and returns an ErrValidation.
func validateStruct(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, fe.Field())
		case "max":
			return fmt.Errorf("%w: %s is longer than %s characters", apperrors.ErrValidation, fe.Field(), fe.Param())
		}
		return fmt.Errorf("%w: %s is malformed", apperrors.ErrValidation, fe.Field())
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// ParsePage coerces a page query value. Anything unparsable or below one is
// page 1; positive values too large for an int clamp to the largest page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParseID parses a record id. A missing id is a validation error; an id that
// can never resolve is reported as not found.
func ParseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("record %q: %w", raw, apperrors.ErrNotFound)
	}
	return uint(id), nil
}
