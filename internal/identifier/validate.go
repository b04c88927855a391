package identifier

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Kind names the identifier scheme recognised by ValidateID.
type Kind string

const (
	KindUnknown        Kind = ""
	KindCrossrefFunder Kind = "Crossref Funder ID"
	KindDOI            Kind = "DOI"
	KindUUID           Kind = "UUID"
	KindRID            Kind = "RID"
	KindORCID          Kind = "ORCID"
	KindROR            Kind = "ROR"
	KindGRID           Kind = "GRID"
	KindWikidata       Kind = "Wikidata"
	KindISNI           Kind = "ISNI"
	KindISSN           Kind = "ISSN"
	KindURL            Kind = "URL"
)

var (
	funderRE   = regexp.MustCompile(`^(?:https?://doi\.org/)?(?:10\.13039/)?((?:501)?1000[0-9]{5})$`)
	ridRE      = regexp.MustCompile(`^[0-9A-Z]{5}-[0-9A-Z]{3}[0-9]{2}$`)
	orcidRE    = regexp.MustCompile(`^(?:https?://(?:(?:www|sandbox)\.)?orcid\.org/)?(000[09][ -]000[123][ -]\d{4}[ -]\d{3}[0-9X])$`)
	rorRE      = regexp.MustCompile(`^(?:https?://ror\.org/)?(0[0-9a-z]{6}\d{2})$`)
	gridRE     = regexp.MustCompile(`^(?:https?://(?:www\.)?grid\.ac/)?(?:institutes/)?(grid\.[0-9]+\.[a-f0-9]{1,2})$`)
	wikidataRE = regexp.MustCompile(`^(?:https?://(?:www\.)?wikidata\.org/wiki/)?(Q\d+)$`)
	isniRE     = regexp.MustCompile(`^(?:https?://(?:www\.)?isni\.org/)?(?:isni/)?(0000[ -]?00\d{2}[ -]?\d{4}[ -]?\d{3}[0-9X])$`)
	issnRE     = regexp.MustCompile(`^(?:https://portal\.issn\.org/resource/ISSN/)?(\d{4}-\d{3}[\dxX])$`)
)

// ValidateID detects the scheme of id and returns its bare value.
// Schemes are tried from most to least specific; an unrecognised id yields
// ("", KindUnknown).
func ValidateID(id string) (string, Kind) {
	s := strings.TrimSpace(id)

	if v, ok := ValidateCrossrefFunderID(s); ok {
		return v, KindCrossrefFunder
	}
	if d, err := Parse(s); err == nil {
		return d.String(), KindDOI
	}
	if v, ok := ValidateUUID(s); ok {
		return v, KindUUID
	}
	if ridRE.MatchString(s) {
		return s, KindRID
	}
	if v, ok := ValidateORCID(s); ok {
		return v, KindORCID
	}
	if v, ok := ValidateROR(s); ok {
		return v, KindROR
	}
	if v, ok := submatch(gridRE, s); ok {
		return v, KindGRID
	}
	if v, ok := submatch(wikidataRE, s); ok {
		return v, KindWikidata
	}
	if v, ok := ValidateISNI(s); ok {
		return v, KindISNI
	}
	if v, ok := ValidateISSN(s); ok {
		return v, KindISSN
	}
	if ValidateURL(s) {
		return s, KindURL
	}
	return "", KindUnknown
}

func ValidateCrossrefFunderID(s string) (string, bool) { return submatch(funderRE, s) }
func ValidateROR(s string) (string, bool)              { return submatch(rorRE, s) }
func ValidateISSN(s string) (string, bool)             { return submatch(issnRE, s) }

// ValidateORCID accepts bare or URL-form ORCID iDs inside the ranges reserved
// for ORCID (0000-0001-5000-0007..0000-0003-5000-0001 and
// 0009-0000-0000-0000..0009-0010-0000-0000).
func ValidateORCID(s string) (string, bool) {
	v, ok := submatch(orcidRE, s)
	if !ok || !inORCIDRange(v) {
		return "", false
	}
	return v, true
}

// NormalizeORCID returns the https://orcid.org/ form of a valid ORCID iD.
func NormalizeORCID(s string) (string, bool) {
	v, ok := ValidateORCID(strings.TrimSpace(s))
	if !ok {
		return "", false
	}
	return "https://orcid.org/" + strings.ReplaceAll(v, " ", "-"), true
}

// ValidateISNI accepts ISNIs outside the ORCID ranges.
func ValidateISNI(s string) (string, bool) {
	v, ok := submatch(isniRE, s)
	if !ok || inORCIDRange(v) {
		return "", false
	}
	return v, true
}

// ValidateUUID accepts canonical 36-character version 4 UUIDs.
func ValidateUUID(s string) (string, bool) {
	if len(s) != 36 {
		return "", false
	}
	u, err := uuid.Parse(s)
	if err != nil || u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		return "", false
	}
	return s, true
}

// ValidateURL reports whether s is an absolute http(s) URL without session
// fragments.
func ValidateURL(s string) bool {
	if strings.Contains(s, ";origin=") || strings.Contains(s, ";jsessionid=") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func inORCIDRange(v string) bool {
	n := strings.NewReplacer("-", "", " ", "").Replace(v)
	return (n >= "0000000150000007" && n <= "0000000350000001") ||
		(n >= "0009000000000000" && n <= "0009001000000000")
}

func submatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
