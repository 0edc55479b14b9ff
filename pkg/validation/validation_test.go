package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string   `json:"organizationName" validate:"required,min=2,valid_name"`
	Website string   `json:"companyWebsite" validate:"url_or_empty"`
	Skills  []string `json:"topSkills" validate:"required,min=1,dive,tag_name"`
	Bio     *string  `json:"professionalBio,omitempty" validate:"omitempty,min=20,no_emoji"`
}

func ptr(s string) *string { return &s }

func TestNew_ValidPayload(t *testing.T) {
	v := New()
	err := v.Struct(sample{
		Name:    "Acme Inc.",
		Website: "",
		Skills:  []string{"go", "sql"},
	})
	assert.NoError(t, err)
}

func TestFieldErrors_UsesJSONPaths(t *testing.T) {
	v := New()
	err := v.Struct(sample{
		Name:    "A",
		Website: "not a url",
		Skills:  []string{"go", "   "},
		Bio:     ptr("too short"),
	})
	require.Error(t, err)

	details := FieldErrors(err, "draft")
	assert.Equal(t, []string{"Must be at least 2 characters"}, details["draft.organizationName"])
	assert.Equal(t, []string{"Invalid URL"}, details["draft.companyWebsite"])
	assert.Contains(t, details, "draft.topSkills[1]")
	assert.Equal(t, []string{"Must be at least 20 characters"}, details["draft.professionalBio"])
}

func TestFieldErrors_EmptyList(t *testing.T) {
	v := New()
	err := v.Struct(sample{Name: "Acme", Skills: []string{}})
	require.Error(t, err)

	details := FieldErrors(err, "")
	assert.Equal(t, []string{"Must contain at least 1 item(s)"}, details["topSkills"])
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	details := FieldErrors(errors.New("boom"), "")
	assert.Equal(t, []string{"boom"}, details["_"])
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()
	err := v.Struct(sample{Skills: []string{"go"}})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Contains(t, msgs, "Organization name: Required")
}

func TestCustomValidators(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"https url", "https://acme.io", "url_or_empty", true},
		{"empty url", "", "url_or_empty", true},
		{"ftp url", "ftp://acme.io", "url_or_empty", false},
		{"relative url", "/acme", "url_or_empty", false},
		{"plain name", "Acme & Sons", "valid_name", true},
		{"name with symbol", "Acme#1", "valid_name", false},
		{"emoji", "hello 🚀", "no_emoji", false},
		{"tag", "kubernetes", "tag_name", true},
		{"blank tag", "  ", "tag_name", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetFieldLabel(t *testing.T) {
	assert.Equal(t, "Top skills", getFieldLabel("topSkills[3]"))
	assert.Equal(t, "Some field", getFieldLabel("someField"))
}
