package extract

import (
	"strings"
	"testing"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

func work() domain.RawDocument {
	return domain.RawDocument{
		"DOI":   "10.5555/abc",
		"title": []any{"A title"},
		"author": []any{
			map[string]any{"given": "Josiah", "family": "Carberry"},
		},
		"subtitle": []any{},
	}
}

func TestApply_EmptyRules(t *testing.T) {
	got, results := Apply(work(), nil)
	if len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
}

func TestApply_Success(t *testing.T) {
	got, results := Apply(work(), map[string]string{
		"doi":    "$.DOI",
		"family": "$.author[0].family",
	})

	if got["doi"] != "10.5555/abc" {
		t.Fatalf("expected doi=10.5555/abc, got=%v", got["doi"])
	}
	if got["family"] != "Carberry" {
		t.Fatalf("expected family=Carberry, got=%v", got["family"])
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got=%d", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("expected all success, got fail: %+v", r)
		}
	}
}

func TestApply_FailuresDoNotStopOthers(t *testing.T) {
	got, results := Apply(work(), map[string]string{
		"a_missing": "$.nope",
		"b_empty":   "$.subtitle",
		"c_blank":   "  ",
		"d_title":   "$.title[0]",
	})

	if len(got) != 1 || got["d_title"] != "A title" {
		t.Fatalf("expected only d_title selected, got %v", got)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	// sorted by name
	if results[0].Name != "a_missing" || results[3].Name != "d_title" {
		t.Fatalf("unexpected result order: %+v", results)
	}
	if results[0].Success {
		t.Fatalf("expected missing key to fail, got %+v", results[0])
	}
	if results[1].Success || !strings.Contains(results[1].Message, "no value found") {
		t.Fatalf("expected no value found, got %+v", results[1])
	}
	if results[2].Success || !strings.Contains(results[2].Message, "empty jsonpath") {
		t.Fatalf("expected empty expression, got %+v", results[2])
	}
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]string{"doi=$.DOI", " $.type "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules["doi"] != "$.DOI" || rules["$.type"] != "$.type" {
		t.Fatalf("unexpected rules: %v", rules)
	}

	if _, err := ParseRules([]string{"name="}); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
