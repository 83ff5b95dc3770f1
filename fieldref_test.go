package bindkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit"
)

func TestFieldNames(t *testing.T) {
	type person struct {
		Name string
		Age  int
		Tags []string
	}

	t.Run("resolves declared names in order", func(t *testing.T) {
		names, err := bindkit.FieldNames(func(p *person) []any {
			return []any{&p.Age, &p.Name, &p.Tags}
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Age", "Name", "Tags"}, names)
	})

	t.Run("duplicates are preserved", func(t *testing.T) {
		names, err := bindkit.FieldNames(func(p *person) []any {
			return []any{&p.Age, &p.Age}
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Age", "Age"}, names)
	})

	t.Run("empty selector yields empty list", func(t *testing.T) {
		names, err := bindkit.FieldNames(func(p *person) []any {
			return nil
		})

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("matches the same fields as string names", func(t *testing.T) {
		names, err := bindkit.FieldNames(func(p *person) []any {
			return []any{&p.Name, &p.Age}
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Age"}, names)
	})

	t.Run("non-pointer reference fails", func(t *testing.T) {
		_, err := bindkit.FieldNames(func(p *person) []any {
			return []any{p.Name}
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, bindkit.ErrNotModelField)
	})

	t.Run("pointer outside the model fails", func(t *testing.T) {
		local := 42
		_, err := bindkit.FieldNames(func(p *person) []any {
			return []any{&local}
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, bindkit.ErrNotModelField)
	})

	t.Run("method value fails", func(t *testing.T) {
		_, err := bindkit.FieldNames(func(p *person) []any {
			computed := len(p.Name)
			return []any{&computed}
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, bindkit.ErrNotModelField)
	})

	t.Run("non-struct model fails", func(t *testing.T) {
		_, err := bindkit.FieldNames(func(n *int) []any {
			return []any{n}
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, bindkit.ErrNotModelField)
	})
}

func TestMustFieldNames(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}

	t.Run("returns names", func(t *testing.T) {
		names := bindkit.MustFieldNames(func(p *person) []any {
			return []any{&p.Name}
		})
		assert.Equal(t, []string{"Name"}, names)
	})

	t.Run("panics on bad reference", func(t *testing.T) {
		assert.Panics(t, func() {
			local := 0
			bindkit.MustFieldNames(func(p *person) []any {
				return []any{&local}
			})
		})
	})
}
