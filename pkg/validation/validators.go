package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)
)

const maxTagNameLength = 50

// New returns a validator that reports json field names instead of Go field
// names, with the custom rules below registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("url_or_empty", URLOrEmpty)
	_ = v.RegisterValidation("tag_name", TagName)
}

// ValidName accepts organization and person names.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// URLOrEmpty accepts "" or an absolute http(s) URL. Profile links are optional
// but forms submit them as empty strings.
func URLOrEmpty(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true
	}
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// TagName validates one entry of a tag list: non-blank after trimming and at
// most 50 characters.
func TagName(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	return val != "" && len([]rune(val)) <= maxTagNameLength
}
