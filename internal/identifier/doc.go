// Package identifier parses, validates and canonicalizes persistent identifiers.
//
// DOI is the identifier resolved by commonmeta. The package also validates
// the other scholarly identifiers found in metadata (ORCID, ROR, ISSN, ...)
// and implements the Crockford base32 suffix scheme used to mint and decode
// DOIs, ROR IDs and ORCID numbers.
package identifier
