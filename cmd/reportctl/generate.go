package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grant-portal/internal/cli"
	"grant-portal/internal/service/builder"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run a report and print a preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := cli.LoadSpecFile(file)
			if err != nil {
				return err
			}

			b := builder.New(opts.logger(cmd), spec.DataSource)
			b.Dispatch(cli.Actions(spec)...)

			if err := b.Generate(cmd.Context(), opts.client()); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			p, _ := b.Preview()
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderPreview(p))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Report specification (YAML)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newSaveCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a report specification as a template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := cli.LoadSpecFile(file)
			if err != nil {
				return err
			}

			b := builder.New(opts.logger(cmd), spec.DataSource)
			b.Dispatch(cli.Actions(spec)...)

			if err := b.SaveTemplate(cmd.Context(), opts.client()); err != nil {
				return fmt.Errorf("save template: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Template saved")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Report specification (YAML)")
	cmd.MarkFlagRequired("file")

	return cmd
}
