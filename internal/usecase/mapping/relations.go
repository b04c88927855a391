package mapping

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
)

func mapRelations(obj map[string]any) ([]domain.Relation, error) {
	rel, _, err := objectAt(obj, "relation", "relation")
	if err != nil || len(rel) == 0 {
		return nil, err
	}

	var out []domain.Relation
	for _, key := range slices.Sorted(maps.Keys(rel)) {
		v := rel[key]
		typ, ok := RelationType(key)
		if !ok {
			continue
		}

		field := "relation." + key
		entries, isArray := v.([]any)
		if !isArray {
			if v == nil {
				continue
			}
			return nil, domain.MalformedField(field, fmt.Sprintf("expected array, got %s", shape(v)))
		}

		for i, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				return nil, domain.MalformedField(field, fmt.Sprintf("element %d: expected object, got %s", i, shape(e)))
			}
			id, keep, err := relatedID(entry, field)
			if err != nil {
				return nil, err
			}
			if keep {
				out = append(out, domain.Relation{Type: typ, ID: id})
			}
		}
	}

	slices.SortFunc(out, func(a, b domain.Relation) int {
		if c := cmp.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return slices.Compact(out), nil
}

func relatedID(entry map[string]any, field string) (string, bool, error) {
	idType, _, err := stringAt(entry, "id-type", field+".id-type")
	if err != nil {
		return "", false, err
	}
	id, _, err := stringAt(entry, "id", field+".id")
	if err != nil {
		return "", false, err
	}

	if strings.EqualFold(strings.TrimSpace(idType), "doi") {
		doi, err := identifier.Parse(id)
		if err != nil {
			return "", false, nil
		}
		return doi.String(), true, nil
	}

	id = strings.TrimSpace(id)
	return id, id != "", nil
}
