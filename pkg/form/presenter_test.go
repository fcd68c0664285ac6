package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/form"
)

func TestDisplayState(t *testing.T) {
	t.Run("show then inspect", func(t *testing.T) {
		d := form.NewDisplayState()
		d.ShowError("email", "invalid e-mail format")

		state, ok := d.State("email")
		require.True(t, ok)
		assert.True(t, state.Invalid)
		assert.Equal(t, "invalid e-mail format", state.Message)
		assert.Equal(t, 1, d.ErroredFields())
	})

	t.Run("show replaces previous message", func(t *testing.T) {
		d := form.NewDisplayState()
		d.ShowError("email", "field is required")
		d.ShowError("email", "invalid e-mail format")

		state, ok := d.State("email")
		require.True(t, ok)
		assert.Equal(t, "invalid e-mail format", state.Message)
		assert.Equal(t, 1, d.ErroredFields())
	})

	t.Run("show twice with same message is idempotent", func(t *testing.T) {
		d := form.NewDisplayState()
		d.ShowError("email", "field is required")
		before, _ := d.State("email")

		d.ShowError("email", "field is required")
		after, ok := d.State("email")
		require.True(t, ok)
		assert.Equal(t, before, after)
		assert.Equal(t, 1, d.ErroredFields())
	})

	t.Run("clear removes display", func(t *testing.T) {
		d := form.NewDisplayState()
		d.ShowError("email", "field is required")
		d.ClearError("email")

		_, ok := d.State("email")
		assert.False(t, ok)
		assert.Zero(t, d.ErroredFields())
	})

	t.Run("clear on clean field is a no-op", func(t *testing.T) {
		d := form.NewDisplayState()
		d.ClearError("email")
		d.ClearError("email")

		_, ok := d.State("email")
		assert.False(t, ok)
		assert.Zero(t, d.ErroredFields())
	})
}
