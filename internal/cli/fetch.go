package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/infra/recordstore"
	"github.com/aalvaropc/commonmeta/internal/usecase"
	"github.com/aalvaropc/commonmeta/internal/usecase/extract"
)

func fetchCmd(rf *rootFlags) *cobra.Command {
	var selects []string
	var saveDir string

	c := &cobra.Command{
		Use:   "fetch <doi>",
		Short: "Print the raw Crossref work document for a DOI",
		Long: "Print the unmapped Crossref work (the \"message\" of the API response).\n" +
			"Use --select name=$.path to print only some values, --save to keep a fixture file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rules, err := extract.ParseRules(selects)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd, rf)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.Close(); err == nil {
					err = cerr
				}
			}()

			id, doc, err := usecase.NewFetchWork(a.fetcher).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			raw, err := prettyJSON(doc)
			if err != nil {
				return err
			}

			if strings.TrimSpace(saveDir) != "" {
				path := filepath.Join(saveDir, recordstore.FileName(id.String()))
				written, werr := recordstore.NewFileStore().Write(path, raw)
				if werr != nil {
					return werr
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", written)
			}

			if len(rules) == 0 {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			return printSelection(cmd.OutOrStdout(), cmd.ErrOrStderr(), doc, rules)
		},
	}

	c.Flags().StringArrayVar(&selects, "select", nil, "print only name=$.jsonpath values (repeatable)")
	c.Flags().StringVar(&saveDir, "save", "", "also write the document to this directory")
	return c
}

func printSelection(stdout, stderr io.Writer, doc domain.RawDocument, rules map[string]string) error {
	selected, results := extract.Apply(doc, rules)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(stderr, "✗ %s\n", r.Message)
		}
	}

	out, err := prettyJSON(selected)
	if err != nil {
		return err
	}
	if _, err := stdout.Write(out); err != nil {
		return err
	}

	if failed > 0 {
		return &domain.OpError{
			Op:   "cli.fetch",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%d selection(s) failed", failed),
		}
	}
	return nil
}

func prettyJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, &domain.OpError{Op: "cli.encode", Kind: domain.KindExecution, Err: err}
	}
	return buf.Bytes(), nil
}
