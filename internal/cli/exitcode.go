package cli

import (
	"errors"
	"strings"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// Process exit codes. Scripts switch on these, so values never change.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitInvalidIdentifier = 2
	ExitNotFound          = 3
	ExitTransient         = 4
	ExitMalformedResponse = 5
	ExitMapping           = 6
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch domain.KindOf(err) {
	case domain.KindInvalidIdentifier:
		return ExitInvalidIdentifier
	case domain.KindNotFound:
		// a missing --config file is a usage error, not an unknown DOI
		var oe *domain.OpError
		if errors.As(err, &oe) && strings.HasPrefix(oe.Op, "config.") {
			return ExitFailure
		}
		return ExitNotFound
	case domain.KindTransient:
		return ExitTransient
	case domain.KindMalformedResponse:
		return ExitMalformedResponse
	case domain.KindMissingRequiredField, domain.KindMalformedField:
		return ExitMapping
	default:
		return ExitFailure
	}
}
