package rules_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/rules"
)

func TestNationalID(t *testing.T) {
	t.Run("passes valid checksum", func(t *testing.T) {
		assert.NoError(t, rules.NationalID("52998224725"))
	})

	t.Run("passes valid checksum with mask", func(t *testing.T) {
		assert.NoError(t, rules.NationalID("529.982.247-25"))
	})

	t.Run("fails wrong length", func(t *testing.T) {
		assert.ErrorIs(t, rules.NationalID("5299822472"), rules.ErrNationalIDLength)
		assert.ErrorIs(t, rules.NationalID("529982247251"), rules.ErrNationalIDLength)
		assert.ErrorIs(t, rules.NationalID(""), rules.ErrNationalIDLength)
	})

	t.Run("fails every identical-digit sequence", func(t *testing.T) {
		for d := 0; d <= 9; d++ {
			id := strings.Repeat(fmt.Sprintf("%d", d), 11)
			assert.ErrorIs(t, rules.NationalID(id), rules.ErrInvalidNationalID, "id %s", id)
		}
	})

	t.Run("fails when first check digit is wrong", func(t *testing.T) {
		assert.ErrorIs(t, rules.NationalID("52998224735"), rules.ErrInvalidNationalID)
	})

	t.Run("fails when second check digit is wrong", func(t *testing.T) {
		assert.ErrorIs(t, rules.NationalID("52998224726"), rules.ErrInvalidNationalID)
	})

	t.Run("single-digit mutations break the checksum", func(t *testing.T) {
		const valid = "52998224725"
		for pos := 0; pos < len(valid); pos++ {
			orig := valid[pos] - '0'
			mutated := []byte(valid)
			mutated[pos] = byte('0' + (orig+1)%10)

			err := rules.NationalID(string(mutated))
			require.Error(t, err, "mutation at position %d slipped through", pos)
			assert.ErrorIs(t, err, rules.ErrInvalidNationalID)
		}
	})
}
