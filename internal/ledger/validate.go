package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/period"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Decimals are validated through their float value so that numeric
	// tags like gt=0 apply to them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterValidation("periodkey", func(fl validator.FieldLevel) bool {
		_, err := period.Parse(fl.Field().String())
		return err == nil
	})

	return v
}

// check validates s and turns validation failures into ErrInvalidInput.
func (l *Ledger) check(s any) error {
	err := l.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	field = strings.ToLower(field[:1]) + field[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "periodkey":
		return field + " must be a month in YYYY-M form"
	}
	return field + " is invalid (" + fe.Tag() + ")"
}

// ParseDate accepts a calendar date (YYYY-MM-DD), interpreted at midnight in
// the ledger's time zone, or an RFC 3339 timestamp.
func (l *Ledger) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if t, err := time.ParseInLocation(calculator.DateLayout, s, l.loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q is neither YYYY-MM-DD nor RFC 3339", ErrInvalidInput, s)
}

// ParseRange parses optional YYYY-MM-DD bounds for Summary.
func (l *Ledger) ParseRange(start, end string) (calculator.DateRange, error) {
	r, err := calculator.ParseDateRange(start, end, l.loc)
	if err != nil {
		return calculator.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return r, nil
}
