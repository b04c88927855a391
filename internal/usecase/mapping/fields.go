package mapping

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// The helpers below treat a missing key and an explicit null the same way:
// both report ok=false. A present value of the wrong shape is a MalformedField.

func lookup(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func stringAt(obj map[string]any, key, field string) (string, bool, error) {
	v, ok := lookup(obj, key)
	if !ok {
		return "", false, nil
	}
	s, isString := v.(string)
	if !isString {
		return "", false, domain.MalformedField(field, fmt.Sprintf("expected string, got %s", shape(v)))
	}
	return s, true, nil
}

func arrayAt(obj map[string]any, key, field string) ([]any, bool, error) {
	v, ok := lookup(obj, key)
	if !ok {
		return nil, false, nil
	}
	arr, isArray := v.([]any)
	if !isArray {
		return nil, false, domain.MalformedField(field, fmt.Sprintf("expected array, got %s", shape(v)))
	}
	return arr, true, nil
}

func objectAt(obj map[string]any, key, field string) (map[string]any, bool, error) {
	v, ok := lookup(obj, key)
	if !ok {
		return nil, false, nil
	}
	m, isObject := v.(map[string]any)
	if !isObject {
		return nil, false, domain.MalformedField(field, fmt.Sprintf("expected object, got %s", shape(v)))
	}
	return m, true, nil
}

// stringsAt reads an array of strings, normalizing whitespace and skipping blanks.
func stringsAt(obj map[string]any, key, field string) ([]string, error) {
	arr, _, err := arrayAt(obj, key, field)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(arr))
	for i, v := range arr {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, domain.MalformedField(field, fmt.Sprintf("element %d: expected string, got %s", i, shape(v)))
		}
		if s = collapse(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// integer accepts JSON numbers with no fractional part and decimal strings.
func integer(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n.String())
		}
		return i, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected number, got %s", shape(v))
	}
}

func shape(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	blockTagRE = regexp.MustCompile(`(?i)</?(?:jats:)?(?:p|title|sec|br|div|list|list-item)\b[^>]*>`)
	tagRE      = regexp.MustCompile(`<[^>]*>`)
)

// plainText drops JATS/HTML tags, unescapes entities and collapses whitespace.
// Block-level tags become a space so adjacent paragraphs stay separated.
func plainText(s string) string {
	s = blockTagRE.ReplaceAllString(s, " ")
	s = tagRE.ReplaceAllString(s, "")
	return collapse(html.UnescapeString(s))
}
