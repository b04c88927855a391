package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

func withAuthors(authors string) string {
	return `{"DOI":"10.1/x","type":"book","title":["T"],"author":` + authors + `}`
}

func TestMap_Creators(t *testing.T) {
	rec, err := Map(parseDoc(t, withAuthors(`[
		{"given":" Ada ","family":"Lovelace","ORCID":"https://orcid.org/0000-0002-1825-0097",
		 "affiliation":[{"name":"Analytical Society"},{"name":"  "},{"id":[]}]},
		{"name":"CERN"},
		{"given":"Only"},
		{"sequence":"additional"},
		{"family":"Turing","name":"ignored when a person name exists","ORCID":"not-an-orcid"}
	]`)))
	require.NoError(t, err)

	assert.Equal(t, []domain.Creator{
		{
			Kind:         domain.CreatorPerson,
			ID:           "https://orcid.org/0000-0002-1825-0097",
			GivenName:    "Ada",
			FamilyName:   "Lovelace",
			Affiliations: []string{"Analytical Society"},
		},
		{Kind: domain.CreatorOrganization, Name: "CERN"},
		{Kind: domain.CreatorPerson, GivenName: "Only"},
		{Kind: domain.CreatorPerson, FamilyName: "Turing"},
	}, rec.Creators)
}

func TestMap_NoAuthors(t *testing.T) {
	for _, authors := range []string{`[]`, `null`} {
		rec, err := Map(parseDoc(t, withAuthors(authors)))
		require.NoError(t, err)
		assert.Empty(t, rec.Creators)
	}
}

func TestMap_CreatorsMalformed(t *testing.T) {
	cases := []struct {
		name    string
		authors string
		field   string
	}{
		{"not an array", `{"given":"A"}`, "author"},
		{"element not an object", `["Ada Lovelace"]`, "author"},
		{"given not a string", `[{"given":1,"family":"L"}]`, "author.given"},
		{"affiliation not an array", `[{"family":"L","affiliation":"X"}]`, "author.affiliation"},
		{"affiliation element", `[{"family":"L","affiliation":["X"]}]`, "author.affiliation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Map(parseDoc(t, withAuthors(tc.authors)))
			requireFieldError(t, err, domain.KindMalformedField, tc.field)
		})
	}
}
