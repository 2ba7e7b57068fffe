package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

var validate = newValidator()

// yearMonth matches YYYY-MM and YYYY-M.
var yearMonth = regexp.MustCompile(`^\d{4}-(0?[1-9]|1[0-2])$`)

// newValidator returns a validator that also knows the date tags used by
// query types: isodate (YYYY-MM-DD) and yearmonth (YYYY-MM or YYYY-M).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool { //nolint:errcheck
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return yearMonth.MatchString(fl.Field().String())
	})
	return v
}

// validateQuery checks a query's struct tags and reports every violated
// field in one ErrInvalidInput.
func validateQuery(q any) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}
