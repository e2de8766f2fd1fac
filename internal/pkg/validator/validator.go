package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// emailShape is deliberately loose: anything of the form local@domain.tld
// without whitespace passes.
var (
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	tenDigits  = regexp.MustCompile(`^[0-9]{10}$`)
)

func init() {
	validate = validator.New()

	// notblank: non-empty after trimming, where "required" would accept
	// whitespace-only input.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// phone10: exactly 10 ASCII digits once whitespace is stripped.
	_ = validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return tenDigits.MatchString(StripWhitespace(fl.Field().String()))
	})

	_ = validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
}

// StripWhitespace removes every whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Check validates v and maps each violation to the caller's per-field
// message. All fields are checked, in struct declaration order; violations
// are collected, not short-circuited.
func Check(v interface{}, messages map[string]string) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var out []string
	for _, fe := range err.(validator.ValidationErrors) {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Field()+" is invalid")
		}
	}
	return out
}
