package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
	"github.com/aalvaropc/commonmeta/internal/infra/logger"
	"github.com/aalvaropc/commonmeta/internal/ports"
	"github.com/aalvaropc/commonmeta/internal/usecase/mapping"
)

// ResolveWork runs the parse -> fetch -> map pipeline for DOIs.
type ResolveWork struct {
	fetcher ports.MetadataFetcher
}

func NewResolveWork(f ports.MetadataFetcher) *ResolveWork {
	return &ResolveWork{fetcher: f}
}

// Result is the outcome of one input of ExecuteAll. Err is nil on success.
type Result struct {
	Input  string
	Record domain.Record
	Err    error
}

// Execute resolves one raw identifier. Invalid input never reaches the network.
func (uc *ResolveWork) Execute(ctx context.Context, raw string) (domain.Record, error) {
	log := logger.From(ctx).With("resolution_id", uuid.NewString())
	ctx = logger.With(ctx, log)

	start := time.Now()
	log.Debug("resolve.start", "input", raw)

	rec, err := uc.resolve(ctx, raw)
	if err != nil {
		log.Warn("resolve.failed",
			"input", raw,
			"kind", string(domain.KindOf(err)),
			"class", string(domain.ClassOf(err)),
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return domain.Record{}, err
	}

	log.Info("resolve.done",
		"doi", rec.ID,
		"type", string(rec.Type),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

func (uc *ResolveWork) resolve(ctx context.Context, raw string) (domain.Record, error) {
	id, err := identifier.Parse(raw)
	if err != nil {
		return domain.Record{}, err
	}

	doc, err := uc.fetcher.Fetch(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}

	return mapping.Map(doc)
}

// ExecuteAll resolves inputs independently with at most limit in flight.
// Results keep the order of inputs; one failure does not stop the others.
func (uc *ResolveWork) ExecuteAll(ctx context.Context, inputs []string, limit int) []Result {
	results := make([]Result, len(inputs))
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			rec, err := uc.Execute(ctx, in)
			results[i] = Result{Input: in, Record: rec, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
