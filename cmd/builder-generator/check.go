package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Check that generated builders are up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.driver()
			if err != nil {
				return err
			}

			res, stale, err := d.Check(cmd.Context(), patterns(args)...)
			if err != nil {
				return err
			}

			if err := a.report(res.Diagnostics); err != nil {
				return err
			}

			for _, path := range stale {
				fmt.Fprintf(a.stdout, "stale: %s\n", path)
			}

			if len(stale) > 0 {
				return errors.WithHint(
					errors.Newf("%d generated file(s) are out of date", len(stale)),
					"run builder-generator gen",
				)
			}

			return nil
		},
	}
}
