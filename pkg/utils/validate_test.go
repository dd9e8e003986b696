package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLocaleTag(t *testing.T) {
	valid := []string{"en-nz", "fr", "zh-tw", "zh-hant", "zh-hant-tw", "EN-NZ", "xx-yy", "ast"}
	for _, tag := range valid {
		assert.NoError(t, ValidateLocaleTag(tag), tag)
	}

	invalid := map[string]string{
		"":           "error.locale_required",
		"en nz":      "error.locale_cannot_contain_spaces",
		"e":          "error.locale_invalid",
		"english":    "error.locale_invalid",
		"en-":        "error.locale_invalid",
		"en_nz":      "error.locale_invalid",
		"../etc":     "error.locale_invalid",
		"en-nz.toml": "error.locale_invalid",
	}
	for tag, want := range invalid {
		err := ValidateLocaleTag(tag)
		require.Error(t, err, tag)
		assert.Equal(t, want, err.Error(), tag)
	}
}

type taggedRequest struct {
	Locale string `validate:"required,localetag" msg:"error.locale_invalid"`
	Other  string `validate:"max=1"`
}

func TestBindingMessageID(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("localetag", func(fl validator.FieldLevel) bool {
		return ValidateLocaleTag(fl.Field().String()) == nil
	}))

	req := taggedRequest{Locale: "not a tag"}
	assert.Equal(t, "error.locale_invalid", BindingMessageID(&req, v.Struct(req)))

	req = taggedRequest{Locale: "fr", Other: "too long"}
	assert.Empty(t, BindingMessageID(req, v.Struct(req)))

	assert.Empty(t, BindingMessageID(req, errors.New("plain")))
}

func TestRegisterValidators(t *testing.T) {
	assert.NoError(t, RegisterValidators())
	assert.NoError(t, RegisterValidators())
}
