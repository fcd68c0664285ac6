package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/form"
	"github.com/formguard/formguard/pkg/rules"
)

func TestValidatorOrder(t *testing.T) {
	v := form.NewValidator(nil, nil)

	t.Run("required failure stops the pass", func(t *testing.T) {
		f := form.Field{ID: "email", Kind: form.KindEmail, Required: true, MinLength: 5}
		assert.EqualError(t, v.Validate(f), "field is required")
	})

	t.Run("kind rule skipped for empty optional value", func(t *testing.T) {
		f := form.Field{ID: "email", Kind: form.KindEmail}
		assert.NoError(t, v.Validate(f))
	})

	t.Run("kind rule runs before min length", func(t *testing.T) {
		f := form.Field{ID: "email", Kind: form.KindEmail, MinLength: 50, Value: "nope"}
		assert.EqualError(t, v.Validate(f), "invalid e-mail format")
	})

	t.Run("min length runs when kind rule passes", func(t *testing.T) {
		f := form.Field{ID: "name", Kind: form.KindText, Value: "ab", MinLength: 3}
		assert.EqualError(t, v.Validate(f), "must be at least 3 characters")
	})

	t.Run("valid field yields no error", func(t *testing.T) {
		f := form.Field{ID: "email", Kind: form.KindEmail, Required: true, Value: "a@b.co"}
		assert.NoError(t, v.Validate(f))
	})
}

func TestValidatorKindDispatch(t *testing.T) {
	v := form.NewValidator(nil, nil)

	cases := []struct {
		name    string
		field   form.Field
		message string
	}{
		{"national id", form.Field{ID: "cpf", Kind: form.KindNationalID, Value: "123"}, "must have 11 digits"},
		{"phone", form.Field{ID: "phone", Kind: form.KindPhone, Value: "123"}, "must have 10 or 11 digits"},
		{"postal code", form.Field{ID: "cep", Kind: form.KindPostalCode, Value: "123"}, "must have 8 digits"},
		{"birth date", form.Field{ID: "dob", Kind: form.KindBirthDate, Value: "junk"}, "invalid date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, v.Validate(tc.field), tc.message)
		})
	}

	t.Run("selection kind validates emptiness only when required", func(t *testing.T) {
		// An empty optional selection never reaches the kind rule; making the
		// field required is what makes the dropdown mandatory.
		optional := form.Field{ID: "state", Kind: form.KindSelection}
		assert.NoError(t, v.Validate(optional))

		required := form.Field{ID: "state", Kind: form.KindSelection, Required: true}
		assert.EqualError(t, v.Validate(required), "field is required")
	})

	t.Run("text kind has no kind rule", func(t *testing.T) {
		f := form.Field{ID: "notes", Kind: form.KindText, Value: "anything at all"}
		assert.NoError(t, v.Validate(f))
	})
}

func TestValidatorMissingRule(t *testing.T) {
	t.Run("broken registration degrades to no rule applied", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register(rules.RuleEmail, nil)

		v := form.NewValidator(reg, nil)
		f := form.Field{ID: "email", Kind: form.KindEmail, Value: "not an email"}
		assert.NoError(t, v.Validate(f))
	})

	t.Run("custom rule failures surface", func(t *testing.T) {
		reg := rules.NewRegistry()
		boom := errors.New("custom failure")
		reg.Register(rules.RuleEmail, func(string) error { return boom })

		v := form.NewValidator(reg, nil)
		f := form.Field{ID: "email", Kind: form.KindEmail, Value: "a@b.co"}
		assert.ErrorIs(t, v.Validate(f), boom)
	})
}
