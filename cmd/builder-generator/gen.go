package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate builders",
		Long: `Generate writes one builder file per package holding records. Every
record is checked before anything is written: when any field is invalid, all
problems are reported and no file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.driver()
			if err != nil {
				return err
			}

			res, err := d.Run(cmd.Context(), patterns(args)...)
			if err != nil {
				return err
			}

			if err := a.report(res.Diagnostics); err != nil {
				return err
			}

			for _, f := range res.Files() {
				fmt.Fprintln(a.stdout, f.Path())
			}

			return nil
		},
	}
}
