// Package extract selects values from a raw upstream document with JSONPath.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// Result reports how one selection went.
type Result struct {
	Name    string
	Success bool
	Message string
}

// Apply evaluates rules (name -> JSONPath expression) against doc.
//
// A failing rule is reported in the results; other rules still run.
// Results are sorted by name.
func Apply(doc domain.RawDocument, rules map[string]string) (map[string]any, []Result) {
	if len(rules) == 0 {
		return map[string]any{}, []Result{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	selected := map[string]any{}
	results := make([]Result, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		if expr == "" {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("select %q: empty jsonpath expression", name),
			})
			continue
		}

		val, err := jsonpath.Get(expr, map[string]any(doc))
		if err != nil {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("select %q (%s): jsonpath error: %v", name, expr, err),
			})
			continue
		}

		if isEmptyValue(val) {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("select %q (%s): no value found", name, expr),
			})
			continue
		}

		selected[name] = val
		results = append(results, Result{
			Name:    name,
			Success: true,
			Message: fmt.Sprintf("selected %q", name),
		})
	}

	return selected, results
}

// ParseRules reads name=expr pairs. An expression alone is named after itself.
func ParseRules(pairs []string) (map[string]string, error) {
	rules := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, expr, ok := strings.Cut(p, "=")
		if !ok {
			name, expr = p, p
		}
		name, expr = strings.TrimSpace(name), strings.TrimSpace(expr)
		if name == "" || expr == "" {
			return nil, &domain.OpError{
				Op:   "extract.parse",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("invalid selection %q (want name=$.path)", p),
			}
		}
		rules[name] = expr
	}
	return rules, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
