package validation

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schedulocity/internal/app/models"
)

// Validation rule patterns
var (
	// Calendar date, YYYY-MM-DD
	IsoDatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Phone numbers: digits, spaces, dashes, parentheses, optional leading +
	PhonePattern = `^\+?[0-9()\- ]{7,20}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	IsoDate *regexp.Regexp
	Phone   *regexp.Regexp
}{
	IsoDate: regexp.MustCompile(IsoDatePattern),
	Phone:   regexp.MustCompile(PhonePattern),
}

// RegisterCustomValidators adds the domain tags to gin's validator engine:
// weekday, timeslot and isodate.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

// Register adds the domain tags to v
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"weekday": func(fl validator.FieldLevel) bool {
			return models.IsWeekday(fl.Field().String())
		},
		"timeslot": func(fl validator.FieldLevel) bool {
			return models.IsTimeSlot(fl.Field().String())
		},
		"isodate": func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form
func IsISODate(s string) bool {
	if !CompiledPatterns.IsoDate.MatchString(s) {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
