package bindkit_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit"
	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/validator"
)

type person struct {
	Name string `form:"name" json:"name"`
	Age  int    `form:"age" json:"age"`
}

func (p person) Validate() error {
	return validator.Apply(
		validator.Required("Name", p.Name),
		validator.Between("Age", p.Age, 0, 150),
	)
}

func formModule(t *testing.T, data url.Values, opts ...bindkit.ModuleOption) *bindkit.Module {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return bindkit.NewModule(bindkit.NewContext(httptest.NewRecorder(), req), opts...)
}

func TestBind(t *testing.T) {
	t.Run("constructs a new populated instance", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}, "age": {"37"}})

		p, err := bindkit.Bind[person](m)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, 37, p.Age)
	})

	t.Run("new instances are distinct", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}})

		first, err := bindkit.Bind[person](m)
		require.NoError(t, err)

		m2 := formModule(t, url.Values{"name": {"Ada"}})
		second, err := bindkit.Bind[person](m2)
		require.NoError(t, err)

		assert.NotSame(t, first, second)
	})

	t.Run("binder not found for unsupported type", func(t *testing.T) {
		m := formModule(t, url.Values{})

		_, err := bindkit.Bind[int](m)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrBinderNotFound)
	})

	t.Run("blacklist by name", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}, "age": {"37"}})

		p, err := bindkit.Bind[person](m, bindkit.Exclude("Age"))
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, 0, p.Age)
	})

	t.Run("blacklist by typed reference", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}, "age": {"37"}})

		p, err := bindkit.Bind[person](m, bindkit.ExcludeFields(func(p *person) []any {
			return []any{&p.Age}
		}))
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, 0, p.Age)
	})

	t.Run("typed reference matches plain names", func(t *testing.T) {
		data := url.Values{"name": {"Ada"}, "age": {"37"}}

		byName, err := bindkit.Bind[person](formModule(t, data), bindkit.Exclude("Age"))
		require.NoError(t, err)

		byRef, err := bindkit.Bind[person](formModule(t, data), bindkit.ExcludeFields(func(p *person) []any {
			return []any{&p.Age}
		}))
		require.NoError(t, err)

		assert.Equal(t, byName, byRef)
	})

	t.Run("bad typed reference panics at call time", func(t *testing.T) {
		assert.Panics(t, func() {
			bindkit.ExcludeFields(func(p *person) []any {
				local := 1
				return []any{&local}
			})
		})
	})
}

func TestBindTo(t *testing.T) {
	t.Run("preserves identity", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}})

		existing := &person{Age: 10}
		got, err := bindkit.BindTo(m, existing)
		require.NoError(t, err)
		assert.Same(t, existing, got)
	})

	t.Run("overwrite disabled retains non-default values", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"20"}})

		existing := &person{Age: 10}
		got, err := bindkit.BindTo(m, existing,
			bindkit.WithConfig(binder.Config{OverwriteExisting: false}))
		require.NoError(t, err)
		assert.Equal(t, 10, got.Age)
	})

	t.Run("default config overwrites", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"20"}})

		existing := &person{Age: 10}
		got, err := bindkit.BindTo(m, existing)
		require.NoError(t, err)
		assert.Equal(t, 20, got.Age)
	})

	t.Run("nil existing behaves like Bind", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}})

		got, err := bindkit.BindTo[person](m, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Ada", got.Name)
	})
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid model", func(t *testing.T) {
		m := formModule(t, url.Values{"name": {"Ada"}, "age": {"37"}})

		p, err := bindkit.BindAndValidate[person](m)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)

		res := m.ValidationResult()
		require.NotNil(t, res)
		assert.True(t, res.IsValid())
	})

	t.Run("invalid model still returned", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"200"}})

		p, err := bindkit.BindAndValidate[person](m)
		require.NoError(t, err, "validation failures are not errors")
		require.NotNil(t, p)
		assert.Equal(t, 200, p.Age)

		res := m.ValidationResult()
		require.NotNil(t, res)
		assert.False(t, res.IsValid())
		assert.True(t, res.Has("Name"))
		assert.True(t, res.Has("Age"))
	})

	t.Run("module and context expose the same result", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"200"}})

		_, err := bindkit.BindAndValidate[person](m)
		require.NoError(t, err)

		assert.Same(t, m.Context().ValidationResult(), m.ValidationResult())
	})

	t.Run("last write wins across calls", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"200"}})

		_, err := bindkit.BindAndValidate[person](m)
		require.NoError(t, err)
		first := m.ValidationResult()
		assert.False(t, first.IsValid())

		m.Validate(person{Name: "Ada", Age: 30})
		second := m.ValidationResult()
		assert.True(t, second.IsValid())
		assert.NotSame(t, first, second)
	})

	t.Run("bind error skips validation", func(t *testing.T) {
		m := formModule(t, url.Values{"age": {"garbage"}})

		_, err := bindkit.BindAndValidate[person](m)
		require.Error(t, err)
		assert.Nil(t, m.ValidationResult())
	})
}

func TestBindToAndValidate(t *testing.T) {
	m := formModule(t, url.Values{"name": {"Ada"}})

	existing := &person{Age: 30}
	got, err := bindkit.BindToAndValidate(m, existing)
	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.True(t, m.ValidationResult().IsValid())
}

type order struct {
	Item  string `form:"item"`
	Count int    `form:"count"`
}

func TestRegisteredValidator(t *testing.T) {
	validator.Register(func(o order) error {
		return validator.Apply(
			validator.Required("Item", o.Item),
			validator.Min("Count", o.Count, 1),
		)
	})

	t.Run("registered validator runs on bind-and-validate", func(t *testing.T) {
		m := formModule(t, url.Values{"count": {"0"}})

		_, err := bindkit.BindAndValidate[order](m)
		require.NoError(t, err)

		res := m.ValidationResult()
		require.NotNil(t, res)
		assert.False(t, res.IsValid())
		assert.Contains(t, res.Get("Count"), "must be at least 1")
	})

	t.Run("model without any validator is valid", func(t *testing.T) {
		type plain struct {
			X int `form:"x"`
		}
		m := formModule(t, url.Values{"x": {"1"}})

		_, err := bindkit.BindAndValidate[plain](m)
		require.NoError(t, err)
		assert.True(t, m.ValidationResult().IsValid())
	})
}

func TestModuleWithCustomLocator(t *testing.T) {
	reg := binder.NewRegistry()
	req := httptest.NewRequest(http.MethodGet, "/?name=Ada", nil)
	m := bindkit.NewModule(bindkit.NewContext(httptest.NewRecorder(), req), bindkit.WithLocator(reg))

	type q struct {
		Name string `query:"name"`
	}
	got, err := bindkit.Bind[q](m)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}
