package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

var ErrUnsupportedBody = errors.New("unsupported request body")

// RequestValues reads a flat set of string values from the request, either
// from a JSON object body or from url-encoded / multipart form values.
// JSON numbers and booleans are kept in their literal text form so callers
// can run the same parsing on them as on form values.
func RequestValues(r *http.Request) (map[string]string, error) {
	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("parse content type: %w", err)
		}
	}

	if mediaType == ContentType.JSON {
		return jsonValues(r.Body)
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	values := make(map[string]string, len(r.Form))
	for k := range r.Form {
		values[k] = r.Form.Get(k)
	}
	return values, nil
}

func jsonValues(body io.Reader) (map[string]string, error) {
	if body == nil {
		return map[string]string{}, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]string{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBody, err)
	}

	values := make(map[string]string, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
			values[k] = ""
		case string:
			values[k] = val
		case json.Number:
			values[k] = val.String()
		case bool:
			values[k] = fmt.Sprintf("%t", val)
		default:
			return nil, fmt.Errorf("%w: field %q is not a scalar", ErrUnsupportedBody, k)
		}
	}
	return values, nil
}

// Trimmed returns the value under key with surrounding whitespace removed.
func Trimmed(values map[string]string, key string) string {
	return strings.TrimSpace(values[key])
}
