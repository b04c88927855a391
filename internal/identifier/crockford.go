package identifier

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Crockford base32 without i, l, o and u, lower-case so identifiers stay URI-friendly.
const crockfordAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// EncodeNumber renders n in Crockford base32, left-padded with zeros to
// length characters (checksum included). With checksum an ISO 7064 mod 97-10
// check value is appended as two decimal digits. splitEvery > 0 inserts a
// dash every splitEvery characters.
func EncodeNumber(n uint64, splitEvery, length int, checksum bool) string {
	var digits []byte
	for v := n; v > 0; v /= 32 {
		digits = append(digits, crockfordAlphabet[v%32])
	}
	if len(digits) == 0 {
		digits = append(digits, '0')
	}

	pad := length
	if checksum && pad > 2 {
		pad -= 2
	}
	for len(digits) < pad {
		digits = append(digits, '0')
	}

	out := make([]byte, 0, len(digits)+2)
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	if checksum {
		out = append(out, fmt.Sprintf("%02d", Checksum(n))...)
	}

	return split(string(out), splitEvery)
}

// Generate returns a random Crockford base32 string of length characters.
func Generate(length, splitEvery int, checksum bool) (string, error) {
	body := length
	if checksum {
		if length < 3 {
			return "", errors.New("length must be >= 3 when checksum is enabled")
		}
		body = length - 2
	}
	if body < 1 || body > 12 {
		return "", fmt.Errorf("length %d out of range", length)
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(5*body))
	r, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return EncodeNumber(r.Uint64(), splitEvery, length, checksum), nil
}

// DecodeNumber parses a Crockford base32 string, verifying the trailing
// two-digit checksum when checksum is set.
func DecodeNumber(s string, checksum bool) (uint64, error) {
	encoded := NormalizeBase32(s)

	var cs uint64
	if checksum {
		if len(encoded) < 3 {
			return 0, fmt.Errorf("input string too short for checksum: %s", s)
		}
		v, err := strconv.ParseUint(encoded[len(encoded)-2:], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid checksum: %s", encoded[len(encoded)-2:])
		}
		cs = v
		encoded = encoded[:len(encoded)-2]
	}
	if encoded == "" {
		return 0, fmt.Errorf("empty base32 string: %q", s)
	}

	var n uint64
	for i := 0; i < len(encoded); i++ {
		idx := strings.IndexByte(crockfordAlphabet, encoded[i])
		if idx < 0 {
			return 0, fmt.Errorf("invalid base32 character %q in %s", encoded[i], s)
		}
		if n > (^uint64(0))>>5 {
			return 0, fmt.Errorf("base32 value overflows: %s", s)
		}
		n = n<<5 | uint64(idx)
	}

	if checksum && Checksum(n) != cs {
		return 0, fmt.Errorf("wrong checksum %d for identifier %s", cs, s)
	}
	return n, nil
}

// NormalizeBase32 lower-cases s, drops dashes and maps the look-alike letters
// i, l and o to their digits.
func NormalizeBase32(s string) string {
	return strings.NewReplacer("-", "", "i", "1", "l", "1", "o", "0").Replace(strings.ToLower(s))
}

// Checksum computes the ISO 7064 mod 97-10 check value of n.
func Checksum(n uint64) uint64 {
	return 97 - (n%97*100)%97 + 1
}

func split(s string, every int) string {
	if every <= 0 || len(s) <= every {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += every {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(s[i:min(i+every, len(s))])
	}
	return b.String()
}
