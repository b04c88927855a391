package usecase

import (
	"context"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
	"github.com/aalvaropc/commonmeta/internal/ports"
)

// FetchWork returns the unmapped upstream document, e.g. to capture fixtures.
type FetchWork struct {
	fetcher ports.MetadataFetcher
}

func NewFetchWork(f ports.MetadataFetcher) *FetchWork {
	return &FetchWork{fetcher: f}
}

func (uc *FetchWork) Execute(ctx context.Context, raw string) (identifier.DOI, domain.RawDocument, error) {
	id, err := identifier.Parse(raw)
	if err != nil {
		return identifier.DOI{}, nil, err
	}

	doc, err := uc.fetcher.Fetch(ctx, id)
	if err != nil {
		return id, nil, err
	}
	return id, doc, nil
}
