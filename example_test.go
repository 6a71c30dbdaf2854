package pave

import (
	"fmt"
	"net/http"
	"strings"
)

func ExampleObject() {
	user := Object(Fields{
		Field("name", String(StringOpts{Min: Ptr(1)})),
		Field("age", Optional(Integer(IntegerOpts{Min: Ptr[int64](0)}))),
		Field("role", DefaultValue("member", OneOf("admin", "member"))),
	})

	_, err := user.Validate(map[string]any{"name": ""}, "user")
	fmt.Println(err)

	value, _ := user.Validate(map[string]any{"name": "Ada"}, "user")
	fmt.Println(value)
	// Output:
	// [user.name] has fewer characters (0) than the allowed minimum (1)
	// map[name:Ada role:member]
}

func ExampleAlternatives() {
	id := Alternatives(UUID().Any(), Integer().Any())

	value, _ := id.Validate(42, "id")
	fmt.Println(value)

	_, err := id.Validate(true, "id")
	fmt.Println(err)
	// Output:
	// 42
	// All alternatives failed for [id]:
	// 	[id.@alternative(0)] should be a string
	// 	[id.@alternative(1)] should be an integer
}

func ExampleTransform() {
	ref := Transform(Object(Fields{
		Field("id", String()),
		Field("type", String()),
	}), func(value map[string]any, path string) string {
		return value["type"].(string) + ":" + value["id"].(string)
	})

	value, _ := ref.Validate(map[string]any{"type": "u", "id": "1"}, "ref")
	fmt.Println(value)
	// Output: u:1
}

func ExampleParse() {
	env := Object(Fields{
		Field("PORT", StringToInteger(IntegerOpts{Min: Ptr[int64](1), Max: Ptr[int64](65535)})),
		Field("DEBUG", DefaultValue(false, StringToBoolean())),
	}, ObjectOpts{IgnoreUnknown: true})

	value, err := Parse(env, map[string]string{"PORT": "8080"}, "env")
	fmt.Println(value, err)

	_, err = Parse(env, map[string]string{"PORT": "80000"}, "env")
	fmt.Println(err)
	// Output:
	// map[DEBUG:false PORT:8080] <nil>
	// [env.PORT] is larger (80000) than the allowed maximum (65535)
}

func ExampleNewSchema() {
	type createUser struct {
		Name  string   `json:"name"`
		Email string   `json:"email"`
		Tags  []string `json:"tags"`
	}

	schema := NewSchema("body", Into[createUser](Object(Fields{
		Field("name", String(StringOpts{Min: Ptr(1), Max: Ptr(64)})),
		Field("email", Email()),
		Field("tags", DefaultValue([]string{}, ArrayOf(String()))),
	})))

	req, _ := http.NewRequest("POST", "http://example.com/users",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	user, err := schema.Parse(req)
	fmt.Printf("%+v %v\n", user, err)
	// Output: {Name:Ada Email:ada@example.com Tags:[]} <nil>
}

func ExampleSatisfies() {
	window := Satisfies(Object(Fields{
		Field("from", Integer()),
		Field("to", Integer()),
	}), "value.from <= value.to")

	_, err := window.Validate(map[string]any{"from": 5, "to": 1}, "window")
	fmt.Println(err)
	// Output: [window] doesn't satisfy the condition (value.from <= value.to)
}
