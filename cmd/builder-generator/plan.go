package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"builder-generator/internal/driver"
	"builder-generator/internal/interp"
	"builder-generator/internal/plan"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		format   string
		simulate bool
	)

	cmd := &cobra.Command{
		Use:   "plan [packages]",
		Short: "Print how record fields are classified",
		Long: `Plan prints every record with the policy of each field: mandatory,
optional or multi. Records with invalid fields are reported and left out.

With --simulate, every builder method is called once with a placeholder value
and the resulting record is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.driver()
			if err != nil {
				return err
			}

			res, err := d.Plan(cmd.Context(), patterns(args)...)
			if err != nil {
				return err
			}

			reportErr := a.report(res.Diagnostics)

			if err := writePlan(a.stdout, res.Records(), format); err != nil {
				return err
			}

			if simulate {
				if err := writeSimulation(a.stdout, res); err != nil {
					return err
				}
			}

			return reportErr
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|yaml|json|dump)")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "exercise every builder and print the result")

	return cmd
}

func writePlan(w io.Writer, records []*plan.Record, format string) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "text":
		for _, r := range records {
			if _, err := io.WriteString(w, plan.Summary(r)); err != nil {
				return err
			}
		}

		return nil
	case "yaml":
		out, err = plan.ExportYAML(records)
	case "json":
		out, err = plan.ExportJSON(records)
		out = append(out, '\n')
	case "dump":
		out = []byte(plan.Dump(records))
	default:
		return errors.Newf("unknown format %q (want text, yaml, json or dump)", format)
	}

	if err != nil {
		return errors.Wrapf(err, "encoding plan as %s", format)
	}

	_, err = w.Write(out)

	return err
}

// simulation is the printed outcome of exercising one builder.
type simulation struct {
	Builder string         `yaml:"builder"`
	Calls   []string       `yaml:"calls"`
	Result  map[string]any `yaml:"result,omitempty"`
	Error   string         `yaml:"error,omitempty"`
}

func writeSimulation(w io.Writer, res *driver.Result) error {
	var sims []simulation

	for _, p := range res.Packages {
		for _, a := range p.Artifacts {
			calls, out, err := interp.Exercise(a)

			sim := simulation{Builder: a.Builder, Result: out}
			for _, c := range calls {
				sim.Calls = append(sim.Calls, fmt.Sprintf("%s(%v)", c.Method, c.Value))
			}

			if err != nil {
				sim.Error = err.Error()
			}

			sims = append(sims, sim)
		}
	}

	out, err := yaml.Marshal(sims)
	if err != nil {
		return errors.Wrap(err, "encoding simulation")
	}

	_, err = w.Write(out)

	return err
}
