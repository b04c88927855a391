package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/infra/logger"
	"github.com/aalvaropc/commonmeta/internal/infra/recordstore"
	"github.com/aalvaropc/commonmeta/internal/usecase"
)

func convertCmd(rf *rootFlags) *cobra.Command {
	var output string
	var concurrency int

	c := &cobra.Command{
		Use:   "convert <doi>...",
		Short: "Resolve DOIs and print their Commonmeta records",
		Long: "Resolve one or more DOIs against Crossref and print Commonmeta JSON.\n" +
			"A single DOI prints an object; several print an array in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := loadApp(cmd, rf)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.Close(); err == nil {
					err = cerr
				}
			}()

			limit := a.cfg.Concurrency
			if cmd.Flags().Changed("concurrency") {
				if concurrency < 1 {
					return &domain.OpError{
						Op:    "cli.convert",
						Kind:  domain.KindInvalidConfig,
						Field: "concurrency",
						Err:   fmt.Errorf("--concurrency must be at least 1, got %d", concurrency),
					}
				}
				limit = concurrency
			}

			results := usecase.NewResolveWork(a.fetcher).ExecuteAll(cmd.Context(), args, limit)
			recs, failed := splitResults(cmd.ErrOrStderr(), results)

			if len(recs) > 0 {
				if werr := emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), output, recs, len(args)); werr != nil {
					return werr
				}
			}
			return failed
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout (.zip writes an archive)")
	c.Flags().IntVar(&concurrency, "concurrency", 0, "maximum resolutions in flight (overrides config)")
	return c
}

// splitResults keeps the successful records in input order. With several
// inputs each failure is reported on w and the returned error wraps the first.
func splitResults(w io.Writer, results []usecase.Result) ([]domain.Record, error) {
	recs := make([]domain.Record, 0, len(results))
	var first error
	failures := 0

	for _, r := range results {
		if r.Err == nil {
			recs = append(recs, r.Record)
			continue
		}
		failures++
		if first == nil {
			first = r.Err
		}
		if len(results) > 1 {
			fmt.Fprintf(w, "%s: %v\n", strings.TrimSpace(r.Input), r.Err)
		}
	}

	switch {
	case failures == 0:
		return recs, nil
	case len(results) == 1:
		return recs, first
	default:
		return recs, fmt.Errorf("%d of %d identifiers failed: %w", failures, len(results), first)
	}
}

// emit prints recs or writes them to output.
func emit(stdout, stderr io.Writer, output string, recs []domain.Record, inputs int) error {
	if strings.TrimSpace(output) == "" {
		_, err := stdout.Write(usecase.Render(recs, inputs))
		return err
	}

	written, err := usecase.NewWriteOutput(recordstore.NewFileStore()).Execute(output, recs, inputs)
	if err != nil {
		return err
	}
	logger.L().Info("output.written", "path", written, "records", len(recs))
	fmt.Fprintf(stderr, "wrote %s\n", written)
	return nil
}
