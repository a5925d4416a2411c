package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/seek/internal/domain"
)

// Query evaluates a JSONPath expression against a JSON document and renders
// the selected value as a string. Single-element arrays collapse to their
// element; objects and longer arrays are rendered as compact JSON.
func Query(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", domain.InvalidInput("extract.query", "empty jsonpath expression")
	}

	doc, err := parseJSON(body)
	if err != nil {
		return "", domain.InvalidInput("extract.query", "document is not valid JSON: %v", err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", domain.InvalidInput("extract.query", "%s: jsonpath error: %v", expr, err)
	}

	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "extract.query",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	return toString(val)
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: jsonpath returns a slice with 1 element
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
