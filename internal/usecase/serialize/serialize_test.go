package serialize

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

func fullRecord() domain.Record {
	return domain.Record{
		ID:     "10.5555/abc",
		Type:   domain.TypeJournalArticle,
		Titles: []string{"Fish & Chips <revisited>", "A subtitle"},
		Creators: []domain.Creator{
			{
				Kind:         domain.CreatorPerson,
				ID:           "https://orcid.org/0000-0002-1825-0097",
				GivenName:    "Josiah",
				FamilyName:   "Carberry",
				Affiliations: []string{"Brown University"},
			},
			{Kind: domain.CreatorOrganization, Name: "Crossref"},
		},
		PublicationDate: &domain.Date{Year: 2020, Month: 4},
		Relations: []domain.Relation{
			{Type: domain.RelCites, ID: "10.1/a"},
			{Type: domain.RelIsPartOf, ID: "10.1/b"},
		},
		Descriptions: []string{"An abstract."},
	}
}

func TestSerialize_FullRecord(t *testing.T) {
	want := `{
  "id": "10.5555/abc",
  "type": "JournalArticle",
  "titles": [
    "Fish & Chips <revisited>",
    "A subtitle"
  ],
  "creators": [
    {
      "type": "Person",
      "id": "https://orcid.org/0000-0002-1825-0097",
      "givenName": "Josiah",
      "familyName": "Carberry",
      "affiliations": [
        "Brown University"
      ]
    },
    {
      "type": "Organization",
      "name": "Crossref"
    }
  ],
  "publicationDate": "2020-04",
  "relations": [
    {
      "relationType": "Cites",
      "relatedIdentifier": "10.1/a"
    },
    {
      "relationType": "IsPartOf",
      "relatedIdentifier": "10.1/b"
    }
  ],
  "descriptions": [
    "An abstract."
  ]
}
`
	assert.Equal(t, want, string(Serialize(fullRecord())))
}

func TestSerialize_OmitsAbsentOptionals(t *testing.T) {
	rec := domain.Record{
		ID:     "10.5555/min",
		Type:   domain.TypeOther,
		Titles: []string{"Minimal"},
	}

	got := string(Serialize(rec))
	assert.Equal(t, `{
  "id": "10.5555/min",
  "type": "Other",
  "titles": [
    "Minimal"
  ],
  "creators": []
}
`, got)
	assert.NotContains(t, got, "null")
}

func TestSerialize_IsIdempotent(t *testing.T) {
	rec := fullRecord()
	first := Serialize(rec)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Serialize(rec))
	}
}

func TestSerialize_KeyOrder(t *testing.T) {
	out := string(Serialize(fullRecord()))

	keys := []string{`"id"`, `"type"`, `"titles"`, `"creators"`, `"publicationDate"`, `"relations"`, `"descriptions"`}
	last := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		require.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestSerialize_ProbeWithJSONPath(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal(Serialize(fullRecord()), &v))

	given, err := jsonpath.Get("$.creators[0].givenName", v)
	require.NoError(t, err)
	assert.Equal(t, "Josiah", given)

	rel, err := jsonpath.Get("$.relations[1].relationType", v)
	require.NoError(t, err)
	assert.Equal(t, "IsPartOf", rel)

	_, err = jsonpath.Get("$.creators[1].givenName", v)
	assert.Error(t, err)
}

func TestSerializeAll_KeepsOrder(t *testing.T) {
	a := domain.Record{ID: "10.1/a", Type: domain.TypeBook, Titles: []string{"A"}}
	b := domain.Record{ID: "10.1/b", Type: domain.TypeBook, Titles: []string{"B"}}

	var out []map[string]any
	require.NoError(t, json.Unmarshal(SerializeAll([]domain.Record{b, a}), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "10.1/b", out[0]["id"])
	assert.Equal(t, "10.1/a", out[1]["id"])

	assert.Equal(t, "[]\n", string(SerializeAll(nil)))
}
