package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to user-facing labels. Unlisted fields are
// split on camelCase.
var FieldLabels = map[string]string{
	"onboardingType":         "Onboarding type",
	"currentStep":            "Current step",
	"isCompleted":            "Completion flag",
	"primaryRole":            "Primary role",
	"highestEducation":       "Highest education",
	"currentStatus":          "Current status",
	"topSkills":              "Top skills",
	"yearsOfExperience":      "Years of experience",
	"professionalBio":        "Professional bio",
	"countryCode":            "Country",
	"portfolioUrl":           "Portfolio URL",
	"githubUrl":              "GitHub URL",
	"linkedinUrl":            "LinkedIn URL",
	"organizationName":       "Organization name",
	"organizationSize":       "Organization size",
	"organizationWebsite":    "Organization website",
	"companyWebsite":         "Company website",
	"hiringDomains":          "Hiring domains",
	"experienceLevelsHiring": "Experience levels",
	"experienceLevels":       "Experience levels",
	"llmProvider":            "LLM provider",
	"llmApiKey":              "LLM API key",
	"defaultModel":           "Default model",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", getFieldLabel(e.Field()), describe(e)))
	}
	return messages
}

// FieldErrors groups validation messages by json field path, e.g.
// "draft.topSkills[0]". prefix is prepended to every path when non-empty.
// Errors that are not validator.ValidationErrors are reported under "_".
func FieldErrors(err error, prefix string) map[string][]string {
	details := make(map[string][]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details[joinPath(prefix, "_")] = []string{err.Error()}
		return details
	}

	for _, e := range validationErrors {
		path := joinPath(prefix, fieldPath(e))
		details[path] = append(details[path], describe(e))
	}
	return details
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func joinPath(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return prefix + "." + path
}

// describe formats a single validation error without the field label.
func describe(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "Required"

	case "min":
		switch e.Kind().String() {
		case "string":
			return fmt.Sprintf("Must be at least %s characters", param)
		case "slice", "array", "map":
			return fmt.Sprintf("Must contain at least %s item(s)", param)
		}
		return fmt.Sprintf("Must be at least %s", param)

	case "max":
		switch e.Kind().String() {
		case "string":
			return fmt.Sprintf("Must be at most %s characters", param)
		case "slice", "array", "map":
			return fmt.Sprintf("Must contain at most %s item(s)", param)
		}
		return fmt.Sprintf("Must be at most %s", param)

	case "len":
		return fmt.Sprintf("Must be exactly %s characters", param)

	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(param), ", "))

	case "eq":
		return fmt.Sprintf("Must be %s", param)

	case "url", "url_or_empty":
		return "Invalid URL"

	case "valid_name":
		return "Only letters, digits, spaces and common punctuation (. ' - / & ( ) ,) are allowed"

	case "no_emoji":
		return "Must not contain emoji or special symbols"

	case "tag_name":
		return fmt.Sprintf("Must be between 1 and %d characters", maxTagNameLength)

	default:
		return fmt.Sprintf("Failed validation (%s)", e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if i := strings.IndexByte(fieldName, '['); i >= 0 {
		fieldName = fieldName[:i]
	}
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			r += 'a' - 'A'
		}
		if i == 0 && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}
