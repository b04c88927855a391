package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/commonmeta/internal/infra/fsworkspace"
	"github.com/aalvaropc/commonmeta/internal/usecase"
)

func initCmd(rf *rootFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a commonmeta.yaml and fixture directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			written, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, rf.mailto, force)
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to do (use --force to overwrite)")
			}
			for _, p := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
