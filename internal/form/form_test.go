package form

import (
	"bytes"
	"mime"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestFromJSONObject(t *testing.T) {
	values, err := FromJSONObject(map[string]any{
		"name":  "John Doe",
		"email": "john@example.com",
		"age":   "30",
	})
	if err != nil {
		t.Fatalf("FromJSONObject() error = %v", err)
	}

	for key, want := range map[string]string{"name": "John Doe", "email": "john@example.com", "age": "30"} {
		if got := values.Get(key); got != want {
			t.Errorf("values.Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestFromJSONObject_Stringifies(t *testing.T) {
	values, err := FromJSONObject(map[string]any{
		"count":  float64(3),
		"ok":     true,
		"none":   nil,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"k": "<v>"},
	})
	if err != nil {
		t.Fatalf("FromJSONObject() error = %v", err)
	}

	want := map[string]string{
		"count":  "3",
		"ok":     "true",
		"none":   "null",
		"tags":   `["a","b"]`,
		"nested": `{"k":"<v>"}`,
	}
	for key, w := range want {
		if got := values.Get(key); got != w {
			t.Errorf("values.Get(%q) = %q, want %q", key, got, w)
		}
	}
}

func TestToJSONObject(t *testing.T) {
	values := url.Values{}
	values.Add("name", "John Doe")
	values.Add("email", "john@example.com")
	values.Add("age", "30")

	got := ToJSONObject(values)
	want := map[string]any{
		"name":  "John Doe",
		"email": "john@example.com",
		"age":   "30",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToJSONObject() = %v, want %v", got, want)
	}
}

func TestToJSONObject_LastValueWins(t *testing.T) {
	values := url.Values{"color": {"red", "blue"}, "empty": {}}

	got := ToJSONObject(values)
	if got["color"] != "blue" {
		t.Errorf("color = %v, want blue", got["color"])
	}
	if _, ok := got["empty"]; ok {
		t.Error("fields without values should be skipped")
	}
}

func TestRoundTrip_StringValues(t *testing.T) {
	obj := map[string]any{"a": "1", "b": "two words", "c": ""}

	values, err := FromJSONObject(obj)
	if err != nil {
		t.Fatalf("FromJSONObject() error = %v", err)
	}
	if got := ToJSONObject(values); !reflect.DeepEqual(got, obj) {
		t.Errorf("round trip = %v, want %v", got, obj)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	values := url.Values{"q": {"perkakas"}, "page": {"2"}}

	data, err := ToJSON(values)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if !reflect.DeepEqual(back, values) {
		t.Errorf("FromJSON(ToJSON()) = %v, want %v", back, values)
	}
}

func TestFromJSON_LargeIntegers(t *testing.T) {
	values, err := FromJSON([]byte(`{"id": 9007199254740993, "ratio": 0.25}`))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if got := values.Get("id"); got != "9007199254740993" {
		t.Errorf("id = %q, want %q", got, "9007199254740993")
	}
	if got := values.Get("ratio"); got != "0.25" {
		t.Errorf("ratio = %q, want %q", got, "0.25")
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	if _, err := FromJSON([]byte("[1,2]")); err == nil {
		t.Error("FromJSON() error = nil, want error for non-object")
	}
}

func TestMultipartRoundTrip(t *testing.T) {
	obj := map[string]any{"name": "John Doe", "age": "30"}

	var buf bytes.Buffer
	contentType, err := EncodeMultipart(&buf, obj)
	if err != nil {
		t.Fatalf("EncodeMultipart() error = %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Errorf("content type = %q", contentType)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType() error = %v", err)
	}

	got, err := DecodeMultipart(&buf, params["boundary"])
	if err != nil {
		t.Fatalf("DecodeMultipart() error = %v", err)
	}
	if !reflect.DeepEqual(got, obj) {
		t.Errorf("DecodeMultipart() = %v, want %v", got, obj)
	}
}
