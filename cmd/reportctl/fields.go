package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grant-portal/internal/cli"
	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "fields [source]",
		Short:     "List the fields a data source can report on",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"proposals", "projects", "users", "evaluations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := storage.DataSources
			if len(args) == 1 {
				src := storage.DataSource(args[0])
				if !constants.KnownSource(src) {
					return fmt.Errorf("unknown data source %q", src)
				}
				sources = []storage.DataSource{src}
			}

			for _, src := range sources {
				fmt.Fprint(cmd.OutOrStdout(), cli.RenderCatalog(src, constants.Catalog(src)))
			}
			return nil
		},
	}
}
