// Package mapping turns a Crossref work document into a Commonmeta record.
//
// Map is pure: it performs no I/O and holds no state, so it is safe to call
// from any number of goroutines.
package mapping

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
)

// Map builds the canonical record for doc.
//
// Mandatory fields (DOI, type, title) fail with MissingRequiredField when
// absent. Any field present with an incompatible shape fails with
// MalformedField. Optional data that cannot be used is left out: unknown work
// types become Other, unnamed creators and unknown relations are dropped and
// a missing date leaves PublicationDate nil.
func Map(doc domain.RawDocument) (domain.Record, error) {
	if doc == nil {
		return domain.Record{}, domain.MissingField("DOI")
	}
	obj := map[string]any(doc)

	id, err := mapID(obj)
	if err != nil {
		return domain.Record{}, err
	}

	typ, err := mapType(obj)
	if err != nil {
		return domain.Record{}, err
	}

	titles, err := mapTitles(obj)
	if err != nil {
		return domain.Record{}, err
	}

	creators, err := mapCreators(obj)
	if err != nil {
		return domain.Record{}, err
	}

	date, err := mapPublicationDate(obj)
	if err != nil {
		return domain.Record{}, err
	}

	relations, err := mapRelations(obj)
	if err != nil {
		return domain.Record{}, err
	}

	descriptions, err := mapDescriptions(obj)
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		ID:              id,
		Type:            typ,
		Titles:          titles,
		Creators:        creators,
		PublicationDate: date,
		Relations:       relations,
		Descriptions:    descriptions,
	}, nil
}

func mapID(obj map[string]any) (string, error) {
	raw, ok, err := stringAt(obj, "DOI", "DOI")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.MissingField("DOI")
	}

	doi, err := identifier.Parse(raw)
	if err != nil {
		return "", domain.MalformedField("DOI", reason(err))
	}
	return doi.String(), nil
}

func mapType(obj map[string]any) (domain.WorkType, error) {
	t, ok, err := stringAt(obj, "type", "type")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.MissingField("type")
	}
	return WorkType(t), nil
}

func mapTitles(obj map[string]any) ([]string, error) {
	titles, err := stringsAt(obj, "title", "title")
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, domain.MissingField("title")
	}

	subtitles, err := stringsAt(obj, "subtitle", "subtitle")
	if err != nil {
		return nil, err
	}
	return append(titles, subtitles...), nil
}

func mapDescriptions(obj map[string]any) ([]string, error) {
	abstract, ok, err := stringAt(obj, "abstract", "abstract")
	if err != nil || !ok {
		return nil, err
	}
	if text := plainText(abstract); text != "" {
		return []string{text}, nil
	}
	return nil, nil
}

// reason returns the message of the innermost cause, without operation context.
func reason(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	return fmt.Sprint(err)
}
