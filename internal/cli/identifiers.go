package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <prefix>",
		Short: "Generate a random DOI with a checksummed base32 suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doi, err := identifier.Encode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doi.URL())
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <id>",
		Short: "Decode the number behind a generated DOI, ROR or ORCID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := identifier.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>",
		Short: "Detect the scheme of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, kind := identifier.ValidateID(args[0])
			if kind == identifier.KindUnknown {
				return domain.InvalidIdentifier(args[0], "unrecognised identifier scheme")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", kind, value)
			return nil
		},
	}
}
