package pave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	v := Optional(String())

	t.Run("AbsentReturnsUndefined", func(t *testing.T) {
		got, err := v.Any().Validate(Undefined, "p")
		require.NoError(t, err)
		assert.True(t, IsUndefined(got))

		typed, err := v.Validate(Undefined, "p")
		require.NoError(t, err)
		assert.Equal(t, "", typed)
	})

	t.Run("InnerIsNotCalledWhenAbsent", func(t *testing.T) {
		called := false
		inner := Func(func(value any, path string) (string, error) {
			called = true
			return "", nil
		})

		_, err := Optional(inner).Validate(Undefined, "p")
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("NullGoesToInner", func(t *testing.T) {
		_, err := v.Validate(nil, "p")
		assert.EqualError(t, err, "[p] should be a string")
	})

	t.Run("PresentGoesToInner", func(t *testing.T) {
		got, err := v.Validate("x", "p")
		require.NoError(t, err)
		assert.Equal(t, "x", got)

		_, err = v.Validate(1, "p")
		assert.EqualError(t, err, "[p] should be a string")
	})
}

func TestNullable(t *testing.T) {
	v := Nullable(String())

	t.Run("NullReturnsNil", func(t *testing.T) {
		got, err := v.Any().Validate(nil, "p")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("AbsentGoesToInner", func(t *testing.T) {
		_, err := v.Validate(Undefined, "p")
		assert.EqualError(t, err, "[p] should be a string")
	})

	t.Run("PresentGoesToInner", func(t *testing.T) {
		got, err := v.Validate("x", "p")
		require.NoError(t, err)
		assert.Equal(t, "x", got)
	})
}

func TestDefaultValue(t *testing.T) {
	t.Run("AbsentReturnsFallback", func(t *testing.T) {
		got, err := DefaultValue("member", String()).Validate(Undefined, "role")
		require.NoError(t, err)
		assert.Equal(t, "member", got)
	})

	t.Run("FallbackIsNotValidated", func(t *testing.T) {
		got, err := DefaultValue[int64](-1, Integer(IntegerOpts{Min: Ptr[int64](0)})).Validate(Undefined, "n")
		require.NoError(t, err)
		assert.Equal(t, int64(-1), got)
	})

	t.Run("NullGoesToInner", func(t *testing.T) {
		_, err := DefaultValue("member", String()).Validate(nil, "role")
		assert.EqualError(t, err, "[role] should be a string")
	})

	t.Run("PresentGoesToInner", func(t *testing.T) {
		got, err := DefaultValue("member", String()).Validate("admin", "role")
		require.NoError(t, err)
		assert.Equal(t, "admin", got)
	})

	t.Run("FallbackIsCopied", func(t *testing.T) {
		fallback := map[string]any{"tags": []any{"a"}}
		v := DefaultValue(fallback, Object(nil, ObjectOpts{IgnoreUnknown: true}))

		first, err := v.Validate(Undefined, "p")
		require.NoError(t, err)
		first["tags"].([]any)[0] = "changed"
		first["extra"] = true

		second, err := v.Validate(Undefined, "p")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"tags": []any{"a"}}, second)
		assert.Equal(t, map[string]any{"tags": []any{"a"}}, fallback)
	})
}

func TestPresenceModifiersCompose(t *testing.T) {
	v := Optional(Nullable(Integer()))

	tests := []struct {
		name    string
		value   any
		check   func(t *testing.T, got any)
		wantErr string
	}{
		{"absent", Undefined, func(t *testing.T, got any) { assert.True(t, IsUndefined(got)) }, ""},
		{"null", nil, func(t *testing.T, got any) { assert.Nil(t, got) }, ""},
		{"value", 4, func(t *testing.T, got any) { assert.Equal(t, int64(4), got) }, ""},
		{"invalid", "x", nil, "[p] should be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Any().Validate(tt.value, "p")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}

	t.Run("DefaultInsideObject", func(t *testing.T) {
		obj := Object(Fields{
			Field("page", DefaultValue[int64](1, StringToInteger())),
			Field("q", Optional(Nullable(String()))),
		})

		got, err := obj.Validate(map[string]any{"q": nil}, "query")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"page": int64(1), "q": nil}, got)
	})
}
