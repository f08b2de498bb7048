// Package form converts between flat form values and JSON objects.
package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strconv"
)

// maxMemory caps how much of a multipart body is held in memory.
const maxMemory = 10 << 20

// ToJSONObject converts form values into a JSON object. When a field
// repeats, the last value wins.
func ToJSONObject(values url.Values) map[string]any {
	obj := make(map[string]any, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		obj[key] = vs[len(vs)-1]
	}
	return obj
}

// FromJSONObject converts a JSON object into form values. Strings are
// kept verbatim; other values are stringified.
func FromJSONObject(obj map[string]any) (url.Values, error) {
	values := make(url.Values, len(obj))
	for key, v := range obj {
		s, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		values.Add(key, s)
	}
	return values, nil
}

// ToJSON encodes form values as a JSON object.
func ToJSON(values url.Values) ([]byte, error) {
	return json.Marshal(ToJSONObject(values))
}

// FromJSON decodes a JSON object into form values.
func FromJSON(data []byte) (url.Values, error) {
	obj, err := DecodeObject(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode form json: %w", err)
	}
	return FromJSONObject(obj)
}

// DecodeObject reads one JSON object from r. Numbers are kept as
// json.Number so large integers survive unchanged.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// EncodeMultipart writes obj as a multipart/form-data body to w and
// returns the content type including the boundary. Fields are written
// in key order.
func EncodeMultipart(w io.Writer, obj map[string]any) (string, error) {
	values, err := FromJSONObject(obj)
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mw := multipart.NewWriter(w)
	for _, k := range keys {
		for _, v := range values[k] {
			if err := mw.WriteField(k, v); err != nil {
				return "", fmt.Errorf("write field %q: %w", k, err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

// DecodeMultipart reads a multipart/form-data body into a JSON object.
// File parts are ignored.
func DecodeMultipart(r io.Reader, boundary string) (map[string]any, error) {
	form, err := multipart.NewReader(r, boundary).ReadForm(maxMemory)
	if err != nil {
		return nil, fmt.Errorf("read multipart form: %w", err)
	}
	defer func() { _ = form.RemoveAll() }()
	return ToJSONObject(url.Values(form.Value)), nil
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return "", err
		}
		return string(bytes.TrimSpace(buf.Bytes())), nil
	}
}
