package identifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// Resolver is the base URL DOIs are expressed against.
const Resolver = "https://doi.org/"

var schemeRE = regexp.MustCompile(`(?i)^(?:https?://(?:dx\.)?(?:doi\.org|handle\.stage\.datacite\.org|handle\.test\.datacite\.org)/|doi:)`)

// DOI is a canonical Digital Object Identifier. The zero value is not a valid
// DOI; values are only produced by Parse.
type DOI struct {
	prefix string
	suffix string
}

// Parse trims, strips an optional doi:/resolver scheme and lower-cases the
// identifier. Percent-encoded sequences in the suffix are kept as they are.
func Parse(raw string) (DOI, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DOI{}, domain.InvalidIdentifier(raw, "empty identifier")
	}

	s = s[len(schemeRE.FindString(s)):]

	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return DOI{}, domain.InvalidIdentifier(raw, "missing '/' between prefix and suffix")
	}

	prefix := strings.ToLower(s[:slash])
	if !isPrefix(prefix) {
		return DOI{}, domain.InvalidIdentifier(raw, fmt.Sprintf("prefix %q does not match 10.<digits>", prefix))
	}

	suffix := s[slash+1:]
	if suffix == "" {
		return DOI{}, domain.InvalidIdentifier(raw, "empty suffix")
	}
	if suffix[0] == '/' {
		return DOI{}, domain.InvalidIdentifier(raw, "suffix must not start with '/'")
	}
	if strings.IndexFunc(suffix, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return DOI{}, domain.InvalidIdentifier(raw, "suffix contains whitespace")
	}

	return DOI{prefix: prefix, suffix: strings.ToLower(suffix)}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and constants.
func MustParse(raw string) DOI {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// ParsePrefix validates a bare registrant prefix such as "10.5555".
func ParsePrefix(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = s[len(schemeRE.FindString(s)):]
	s = strings.TrimSuffix(strings.ToLower(s), "/")
	if !isPrefix(s) {
		return "", domain.InvalidIdentifier(raw, fmt.Sprintf("prefix %q does not match 10.<digits>", s))
	}
	return s, nil
}

func (d DOI) String() string {
	if d.IsZero() {
		return ""
	}
	return d.prefix + "/" + d.suffix
}

func (d DOI) Prefix() string { return d.prefix }
func (d DOI) Suffix() string { return d.suffix }
func (d DOI) IsZero() bool   { return d.prefix == "" }

// URL returns the DOI expressed against the doi.org resolver.
func (d DOI) URL() string {
	if d.IsZero() {
		return ""
	}
	return Resolver + d.String()
}

// Escaped replaces the prefix/suffix separator with %2F.
func (d DOI) Escaped() string {
	return strings.ReplaceAll(d.String(), "/", "%2F")
}

func isPrefix(s string) bool {
	digits, ok := strings.CutPrefix(s, "10.")
	if !ok || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
