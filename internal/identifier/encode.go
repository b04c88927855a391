package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// Encode mints a DOI under prefix with a random Crockford base32 suffix:
// ten characters including the checksum, split into two groups of five.
func Encode(prefix string) (DOI, error) {
	p, err := ParsePrefix(prefix)
	if err != nil {
		return DOI{}, err
	}
	suffix, err := Generate(10, 5, true)
	if err != nil {
		return DOI{}, &domain.OpError{
			Op:   "identifier.encode",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return DOI{prefix: p, suffix: suffix}, nil
}

// Decode returns the number behind a base32 DOI suffix, ROR ID or ORCID iD.
func Decode(id string) (uint64, error) {
	value, kind := ValidateID(id)

	var (
		n   uint64
		err error
	)
	switch kind {
	case KindDOI:
		_, suffix, _ := strings.Cut(value, "/")
		n, err = DecodeNumber(suffix, true)
	case KindROR, KindRID:
		n, err = DecodeNumber(value, true)
	case KindORCID:
		n, err = decodeORCID(value)
	default:
		return 0, domain.InvalidIdentifier(id, "identifier not recognized")
	}
	if err != nil {
		return 0, &domain.OpError{
			Op:   "identifier.decode",
			Kind: domain.KindInvalidIdentifier,
			Path: id,
			Err:  err,
		}
	}
	return n, nil
}

func decodeORCID(v string) (uint64, error) {
	digits := strings.NewReplacer("-", "", " ", "").Replace(v)
	if err := validateMod11_2(digits); err != nil {
		return 0, fmt.Errorf("invalid checksum for ORCID %s: %w", v, err)
	}
	return strconv.ParseUint(digits[:len(digits)-1], 10, 64)
}

// validateMod11_2 checks the ISO 7064 mod 11-2 check character of s.
func validateMod11_2(s string) error {
	if len(s) < 2 {
		return fmt.Errorf("input too short")
	}
	body, check := s[:len(s)-1], s[len(s)-1]

	m := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid character %q", c)
		}
		m = ((m + int(c-'0')) * 2) % 11
	}

	want := byte('X')
	if v := (12 - m) % 11; v < 10 {
		want = byte('0' + v)
	}
	if check != want {
		return fmt.Errorf("expected check character %c, got %c", want, check)
	}
	return nil
}
