package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Usernames are 3-50 letters, digits, dots, dashes or underscores
	UsernamePattern = `^[A-Za-z0-9._-]{3,50}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
}

// Tags registered by RegisterRules
const (
	TagNotBlank = "notblank"
	TagUsername = "username"
)

// RegisterRules adds the custom binding tags to v
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagNotBlank: notBlank,
		TagUsername: matches(CompiledPatterns.Username),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsBlank reports whether s is empty once surrounding whitespace is removed
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func notBlank(fl validator.FieldLevel) bool {
	return !IsBlank(fl.Field().String())
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
