package validator_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("built-in types", func(t *testing.T) {
		t.Parallel()
		types := validator.NewRegistry().Types()

		assert.Len(t, types, 17)
		assert.True(t, slices.IsSorted(types))
		assert.Contains(t, types, validator.TypeCollection)
		assert.Contains(t, types, validator.TypeStringCleaner)
	})

	t.Run("register and lookup", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()

		_, ok := r.Lookup("even")
		assert.False(t, ok)

		r.Register("even", newEvenRule)
		c, ok := r.Lookup("even")
		require.True(t, ok)
		assert.Equal(t, validator.Invalid, c("n", 3, nil).Validate())
	})

	t.Run("nil constructors are ignored", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		r.Register(validator.TypeString, nil)

		_, ok := r.Lookup(validator.TypeString)
		assert.True(t, ok)
	})

	t.Run("replace a built-in", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		r.Register(validator.TypeNumeric, newEvenRule)

		v := validator.New(validator.Context{"n": 3}, []validator.RuleSpec{
			validator.Spec("n", validator.TypeNumeric, nil),
		}, validator.WithRegistry(r))
		assert.False(t, v.Validate())
		assert.Equal(t, []string{"n: 3 is not even"}, v.Errors())
	})

	t.Run("custom registry reaches nested validators", func(t *testing.T) {
		t.Parallel()
		r := validator.NewRegistry()
		r.Register("even", newEvenRule)

		v := validator.New(validator.Context{"rows": []any{map[string]any{"n": 2}, map[string]any{"n": 5}}}, []validator.RuleSpec{
			validator.Spec("rows", validator.TypeCollection, validator.Params{"rules": []validator.RuleSpec{
				validator.Spec("n", "even", nil),
			}}),
		}, validator.WithRegistry(r))
		assert.False(t, v.Validate())
		assert.Equal(t, []string{"rows: item 1 is not valid: n: 5 is not even"}, v.Errors())
	})

	t.Run("default registry is shared", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, validator.DefaultRegistry(), validator.DefaultRegistry())
	})
}
