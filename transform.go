package pave

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/mitchellh/mapstructure"
)

///////////////////////////////////////////////////////////////////////////////
// Transform
///////////////////////////////////////////////////////////////////////////////

// Transform validates with inner and maps the result through fn. Failures of
// inner are returned unchanged and fn is not called.
func Transform[In, Out any](inner Validator[In], fn func(value In, path string) Out) Validator[Out] {
	return newValidator[Out](func(value any, path string) (any, error) {
		out, err := inner.Validate(value, path)
		if err != nil {
			return nil, err
		}
		return fn(out, path), nil
	})
}

// TransformErr is Transform for mappings that can fail. An error returned by
// fn is passed through as is. Return Fail from fn to report the input as
// invalid.
func TransformErr[In, Out any](inner Validator[In], fn func(value In, path string) (Out, error)) Validator[Out] {
	return newValidator[Out](func(value any, path string) (any, error) {
		out, err := inner.Validate(value, path)
		if err != nil {
			return nil, err
		}

		mapped, err := fn(out, path)
		if err != nil {
			return nil, err
		}
		return mapped, nil
	})
}

// Refine adds a check to inner. When check returns false for the validated
// value the failure reads "[path] <reason>". An Undefined or nil result from
// Optional or Nullable passes without running check.
func Refine[T any](inner Validator[T], check func(value T) bool, reason string) Validator[T] {
	return newValidator[T](func(value any, path string) (any, error) {
		out, err := inner.run(value, path)
		if err != nil || isSentinel(out) {
			return out, err
		}
		if !check(cast[T](out)) {
			return nil, Fail(path, "%s", reason)
		}
		return out, nil
	})
}

// Satisfies adds a check written as an expr boolean expression to inner.
// The expression sees the validated value as value and its location as
// path, for instance:
//
//	pave.Satisfies(pave.Integer(), "value % 2 == 0")
//
// The expression is compiled once and Satisfies panics if it doesn't
// compile. Evaluation errors are returned as is. Like Refine, Undefined and
// nil results skip the expression.
func Satisfies[T any](inner Validator[T], expression string) Validator[T] {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		panic(fmt.Sprintf("pave: invalid expression %q: %v", expression, err))
	}

	return newValidator[T](func(value any, path string) (any, error) {
		out, err := inner.run(value, path)
		if err != nil || isSentinel(out) {
			return out, err
		}

		ok, err := expr.Run(program, map[string]any{"value": cast[T](out), "path": path})
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %q at %s: %w", expression, path, err)
		}
		if satisfied, _ := ok.(bool); !satisfied {
			return nil, Fail(path, "doesn't satisfy the condition (%s)", expression)
		}
		return out, nil
	})
}

// isSentinel reports whether out came from Optional or Nullable instead of
// a validated T.
func isSentinel(out any) bool {
	return out == nil || IsUndefined(out)
}

///////////////////////////////////////////////////////////////////////////////
// Into
///////////////////////////////////////////////////////////////////////////////

// Into validates with inner and decodes the result into a T, matching
// mapping keys to struct fields through their json tags:
//
//	type User struct {
//		ID   int64  `json:"id"`
//		Name string `json:"name"`
//	}
//
//	users := pave.Into[User](pave.Object(pave.Fields{
//		pave.Field("id", pave.Integer()),
//		pave.Field("name", pave.String()),
//	}))
//
// Decoder errors are returned wrapped, never as validation failures.
func Into[T any, In any](inner Validator[In]) Validator[T] {
	return TransformErr(inner, func(value In, path string) (T, error) {
		var target T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &target,
			TagName: "json",
		})
		if err != nil {
			return target, fmt.Errorf("failed to create decoder: %w", err)
		}

		if err := decoder.Decode(value); err != nil {
			return target, fmt.Errorf("failed to decode %s into %T: %w", path, target, err)
		}
		return target, nil
	})
}
