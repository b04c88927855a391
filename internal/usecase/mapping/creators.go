package mapping

import (
	"fmt"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
)

func mapCreators(obj map[string]any) ([]domain.Creator, error) {
	authors, _, err := arrayAt(obj, "author", "author")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Creator, 0, len(authors))
	for i, a := range authors {
		entry, ok := a.(map[string]any)
		if !ok {
			return nil, domain.MalformedField("author", fmt.Sprintf("element %d: expected object, got %s", i, shape(a)))
		}

		c, keep, err := mapCreator(entry)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, c)
		}
	}
	return out, nil
}

// mapCreator reports keep=false for entries that carry no usable name.
func mapCreator(entry map[string]any) (domain.Creator, bool, error) {
	given, _, err := stringAt(entry, "given", "author.given")
	if err != nil {
		return domain.Creator{}, false, err
	}
	family, _, err := stringAt(entry, "family", "author.family")
	if err != nil {
		return domain.Creator{}, false, err
	}
	name, _, err := stringAt(entry, "name", "author.name")
	if err != nil {
		return domain.Creator{}, false, err
	}
	affiliations, err := mapAffiliations(entry)
	if err != nil {
		return domain.Creator{}, false, err
	}

	given, family, name = collapse(given), collapse(family), collapse(name)

	switch {
	case given != "" || family != "":
		orcid, _, err := stringAt(entry, "ORCID", "author.ORCID")
		if err != nil {
			return domain.Creator{}, false, err
		}
		id, _ := identifier.NormalizeORCID(orcid)
		return domain.Creator{
			Kind:         domain.CreatorPerson,
			ID:           id,
			GivenName:    given,
			FamilyName:   family,
			Affiliations: affiliations,
		}, true, nil
	case name != "":
		return domain.Creator{
			Kind:         domain.CreatorOrganization,
			Name:         name,
			Affiliations: affiliations,
		}, true, nil
	default:
		return domain.Creator{}, false, nil
	}
}

func mapAffiliations(entry map[string]any) ([]string, error) {
	list, _, err := arrayAt(entry, "affiliation", "author.affiliation")
	if err != nil {
		return nil, err
	}

	var out []string
	for i, v := range list {
		aff, ok := v.(map[string]any)
		if !ok {
			return nil, domain.MalformedField("author.affiliation", fmt.Sprintf("element %d: expected object, got %s", i, shape(v)))
		}
		name, _, err := stringAt(aff, "name", "author.affiliation.name")
		if err != nil {
			return nil, err
		}
		if name = collapse(name); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
