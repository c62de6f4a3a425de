package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email          string `form:"email" validate:"required,email"`
	Name           string `form:"name" validate:"required,min=2,alphaspace"`
	Password       string `form:"password" validate:"required,min=6,password-strength"`
	PasswordRepeat string `form:"password_repeat" validate:"required,eqfield=Password"`
	Note           string `json:"note" validate:"max=3"`
}

type withNormalize struct {
	Raw    string `form:"raw"`
	Parsed int    `form:"-"`
}

func (w *withNormalize) Normalize() map[string]string {
	if w.Raw != "7" {
		return map[string]string{"raw": "Must be seven"}
	}
	w.Parsed = 7
	return nil
}

func validSignup() signup {
	return signup{
		Email:          "ana@example.com",
		Name:           "Ana María",
		Password:       "abc123!",
		PasswordRepeat: "abc123!",
	}
}

func validationErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return vErr.Errors
}

func TestValidate(t *testing.T) {
	t.Parallel()
	v := New()

	t.Run("valid input", func(t *testing.T) {
		s := validSignup()
		assert.NoError(t, v.Validate(&s))
	})

	t.Run("fields are reported by form name", func(t *testing.T) {
		s := signup{Email: "not-an-email", Name: "A", Password: "abcdef", PasswordRepeat: "abcdeg", Note: "long"}
		errs := validationErrors(t, v.Validate(&s))

		assert.Equal(t, "Must be a valid email address", errs["email"])
		assert.Equal(t, "Must be at least 2 characters long", errs["name"])
		assert.Equal(t, "Must contain at least one letter, one number and one special character", errs["password"])
		assert.Equal(t, "Passwords do not match", errs["password_repeat"])
		assert.Equal(t, "Must be at most 3 characters long", errs["note"], "json tag is used when there is no form tag")
	})

	t.Run("required", func(t *testing.T) {
		errs := validationErrors(t, v.Validate(&signup{}))
		for _, field := range []string{"email", "name", "password", "password_repeat"} {
			assert.Equal(t, "This field is required", errs[field], field)
		}
	})

	t.Run("alphaspace rejects digits and symbols", func(t *testing.T) {
		s := validSignup()
		s.Name = "Ana 2"
		errs := validationErrors(t, v.Validate(&s))
		assert.Equal(t, "May only contain letters and spaces", errs["name"])

		s.Name = "   "
		errs = validationErrors(t, v.Validate(&s))
		assert.Contains(t, errs, "name")
	})

	t.Run("normalizer runs first and its violations are merged", func(t *testing.T) {
		w := &withNormalize{Raw: "7"}
		require.NoError(t, v.Validate(w))
		assert.Equal(t, 7, w.Parsed)

		w = &withNormalize{Raw: "x"}
		errs := validationErrors(t, v.Validate(w))
		assert.Equal(t, "Must be seven", errs["raw"])
	})
}

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"abc123!":  true,
		"abc_123":  true,
		"ñandú1$":  true,
		"abcdef":   false,
		"123456":   false,
		"abc123":   false,
		"!!!111":   false,
		"":         false,
	}
	for password, want := range tests {
		assert.Equal(t, want, IsStrongPassword(password), password)
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	var e ValidationError
	assert.True(t, e.Empty())

	e.Add("b", "second")
	e.Add("a", "first")
	e.Add("a", "ignored")

	assert.False(t, e.Empty())
	assert.Equal(t, "first", e.Errors["a"])
	assert.Equal(t, "validation failed: field 'a': first; field 'b': second", e.Error())
}
