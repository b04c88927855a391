// Package serialize renders canonical records as Commonmeta JSON.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// Field order of the wire structs is the output key order.

type record struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Titles          []string   `json:"titles"`
	Creators        []creator  `json:"creators"`
	PublicationDate string     `json:"publicationDate,omitempty"`
	Relations       []relation `json:"relations,omitempty"`
	Descriptions    []string   `json:"descriptions,omitempty"`
}

type creator struct {
	Type         string   `json:"type"`
	ID           string   `json:"id,omitempty"`
	GivenName    string   `json:"givenName,omitempty"`
	FamilyName   string   `json:"familyName,omitempty"`
	Name         string   `json:"name,omitempty"`
	Affiliations []string `json:"affiliations,omitempty"`
}

type relation struct {
	RelationType      string `json:"relationType"`
	RelatedIdentifier string `json:"relatedIdentifier"`
}

// Serialize renders rec as indented JSON terminated by a newline.
// The same record always yields the same bytes.
func Serialize(rec domain.Record) []byte {
	b, err := encode(toWire(rec))
	if err != nil {
		// the wire structs hold only strings and slices of them
		panic(fmt.Sprintf("serialize: %v", err))
	}
	return b
}

// SerializeAll renders recs as one JSON array, keeping their order.
func SerializeAll(recs []domain.Record) []byte {
	wire := make([]record, 0, len(recs))
	for _, r := range recs {
		wire = append(wire, toWire(r))
	}
	b, err := encode(wire)
	if err != nil {
		panic(fmt.Sprintf("serialize: %v", err))
	}
	return b
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toWire(rec domain.Record) record {
	out := record{
		ID:           rec.ID,
		Type:         string(rec.Type),
		Titles:       nonNil(rec.Titles),
		Creators:     make([]creator, 0, len(rec.Creators)),
		Descriptions: rec.Descriptions,
	}
	if rec.PublicationDate != nil {
		out.PublicationDate = rec.PublicationDate.String()
	}

	for _, c := range rec.Creators {
		out.Creators = append(out.Creators, creator{
			Type:         string(c.Kind),
			ID:           c.ID,
			GivenName:    c.GivenName,
			FamilyName:   c.FamilyName,
			Name:         c.Name,
			Affiliations: c.Affiliations,
		})
	}
	for _, r := range rec.Relations {
		out.Relations = append(out.Relations, relation{
			RelationType:      string(r.Type),
			RelatedIdentifier: r.ID,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
