package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.c", true},
		{"jane.doe@example.co.uk", true},
		{"user+tag@sub.domain.org", true},
		{"jane..doe@example.com", true}, // imprecise by design
		{"", false},
		{"plainaddress", false},
		{"missing-dot@domain", false},
		{"@no-local.part", false},
		{"no-domain@", false},
		{"two@@at.signs", false},
		{"white space@domain.tld", false},
		{"  padded@domain.tld  ", true}, // surrounding whitespace is trimmed
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidEmail(tt.email))
		})
	}
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	type payload struct {
		Name  string `validate:"notblank"`
		Email string `validate:"notblank,email_shape"`
	}

	assert.NoError(t, v.Struct(payload{Name: "Jane", Email: "jane@example.com"}))
	assert.Error(t, v.Struct(payload{Name: "   ", Email: "jane@example.com"}))
	assert.Error(t, v.Struct(payload{Name: "Jane", Email: "not-an-email"}))

	// Blank email is notblank's violation, not a shape violation
	err := v.Struct(payload{Name: "Jane", Email: ""})
	assert.Error(t, err)
	verrs := err.(validator.ValidationErrors)
	assert.Equal(t, "notblank", verrs[0].Tag())
}
