package pave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("MissingFieldIsValidatedAsUndefined", func(t *testing.T) {
		_, err := Object(Fields{Field("a", String())}).Validate(map[string]any{}, "p")
		assert.EqualError(t, err, "[p.a] should be a string")

		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "p.a", verr.Path)
	})

	t.Run("ValidatesFields", func(t *testing.T) {
		v := Object(Fields{
			Field("name", String()),
			Field("age", Integer()),
		})

		got, err := v.Validate(map[string]any{"name": "Ada", "age": 36}, "user")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ada", "age": int64(36)}, got)
	})

	t.Run("FirstFieldFailureInDeclarationOrder", func(t *testing.T) {
		v := Object(Fields{
			Field("b", String()),
			Field("a", String()),
		})

		_, err := v.Validate(map[string]any{"a": 1, "b": 2}, "p")
		assert.EqualError(t, err, "[p.b] should be a string")
	})

	t.Run("NotAnObject", func(t *testing.T) {
		for _, value := range []any{nil, Undefined, []any{}, "x", 1, true} {
			_, err := Object(nil).Validate(value, "p")
			assert.EqualError(t, err, "[p] should be an object", "%#v", value)
		}
	})

	t.Run("UnknownProperty", func(t *testing.T) {
		_, err := Object(nil).Validate(map[string]any{"a": 1}, "p")
		assert.EqualError(t, err, "Property [p.a] is unknown")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnknownPropertiesReportedInKeyOrder", func(t *testing.T) {
		_, err := Object(nil).Validate(map[string]any{"b": 1, "a": 2}, "p")
		assert.EqualError(t, err, "Property [p.a] is unknown")
	})

	t.Run("IgnoreUnknownCopiesVerbatim", func(t *testing.T) {
		v := Object(Fields{Field("n", Integer())}, ObjectOpts{IgnoreUnknown: true})

		got, err := v.Validate(map[string]any{"n": 1, "a": []any{"x"}}, "p")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"n": int64(1), "a": []any{"x"}}, got)
	})

	t.Run("KeyCountBounds", func(t *testing.T) {
		v := Object(nil, ObjectOpts{IgnoreUnknown: true, Min: Ptr(2), Max: Ptr(3)})

		_, err := v.Validate(map[string]any{"a": 1}, "p")
		assert.EqualError(t, err, "[p] has fewer keys (1) than the allowed minimum (2)")

		_, err = v.Validate(map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}, "p")
		assert.EqualError(t, err, "[p] has more keys (4) than the allowed maximum (3)")

		_, err = v.Validate(map[string]any{"a": 1, "b": 2}, "p")
		assert.NoError(t, err)
	})

	t.Run("FieldFailureBeforeKeyCount", func(t *testing.T) {
		v := Object(Fields{Field("a", String())}, ObjectOpts{Max: Ptr(0)})
		_, err := v.Validate(map[string]any{"a": 1}, "p")
		assert.EqualError(t, err, "[p.a] should be a string")
	})

	t.Run("KeyCountBeforeUnknownKeys", func(t *testing.T) {
		v := Object(Fields{Field("a", Optional(String()))}, ObjectOpts{Max: Ptr(1)})
		_, err := v.Validate(map[string]any{"x": 1, "y": 2}, "p")
		assert.EqualError(t, err, "[p] has more keys (2) than the allowed maximum (1)")
	})

	t.Run("OptionalAbsentFieldIsOmitted", func(t *testing.T) {
		v := Object(Fields{
			Field("name", String()),
			Field("nick", Optional(String())),
		})

		got, err := v.Validate(map[string]any{"name": "Ada"}, "p")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ada"}, got)
		_, present := got["nick"]
		assert.False(t, present)
	})

	t.Run("NullableNullFieldIsKept", func(t *testing.T) {
		v := Object(Fields{Field("nick", Nullable(String()))})

		got, err := v.Validate(map[string]any{"nick": nil}, "p")
		require.NoError(t, err)
		value, present := got["nick"]
		assert.True(t, present)
		assert.Nil(t, value)
	})

	t.Run("TypedMaps", func(t *testing.T) {
		v := Object(Fields{Field("port", StringToInteger())})

		got, err := v.Validate(map[string]string{"port": "8080"}, "env")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"port": int64(8080)}, got)
	})

	t.Run("NestedPaths", func(t *testing.T) {
		v := Object(Fields{
			Field("user", Object(Fields{
				Field("tags", ArrayOf(String())),
			})),
		})

		_, err := v.Validate(map[string]any{
			"user": map[string]any{"tags": []any{"x", 1}},
		}, "p")
		assert.EqualError(t, err, "[p.user.tags[1]] should be a string")
	})

	t.Run("InputIsNotMutated", func(t *testing.T) {
		input := map[string]any{"n": "5", "extra": true}
		v := Object(Fields{Field("n", StringToInteger())}, ObjectOpts{IgnoreUnknown: true})

		_, err := v.Validate(input, "p")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"n": "5", "extra": true}, input)
	})

	t.Run("DuplicateFieldsPanic", func(t *testing.T) {
		assert.Panics(t, func() {
			Object(Fields{Field("a", String()), Field("a", Integer())})
		})
	})

	t.Run("Idempotent", func(t *testing.T) {
		v := Object(Fields{
			Field("name", String()),
			Field("tags", ArrayOf(String())),
		})
		first, err := v.Validate(map[string]any{"name": "x", "tags": []any{"a"}}, "p")
		require.NoError(t, err)

		second, err := v.Validate(map[string]any{"name": first["name"], "tags": first["tags"]}, "p")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func BenchmarkObject(b *testing.B) {
	v := Object(Fields{
		Field("id", UUID()),
		Field("name", String(StringOpts{Min: Ptr(1), Max: Ptr(64)})),
		Field("age", Optional(Integer(IntegerOpts{Min: Ptr[int64](0)}))),
		Field("tags", ArrayOf(String())),
	})
	input := map[string]any{
		"id":   "123e4567-e89b-12d3-a456-426614174000",
		"name": "John Doe",
		"age":  30,
		"tags": []any{"a", "b", "c"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Validate(input, "user"); err != nil {
			b.Fatal(err)
		}
	}
}
