package ports

import (
	"context"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
)

// MetadataFetcher retrieves the raw upstream document for one identifier.
//
// Errors carry one of the fetch kinds: not_found, transient, malformed_response.
type MetadataFetcher interface {
	Fetch(ctx context.Context, id identifier.DOI) (domain.RawDocument, error)
}
