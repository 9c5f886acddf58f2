// Package driver runs the generation pipeline over Go packages: load,
// classify, emit, render and write.
package driver

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/emit"
	"builder-generator/internal/gen"
	"builder-generator/internal/logging"
	"builder-generator/internal/plan"
)

// Driver runs the pipeline with one configuration.
type Driver struct {
	cfg    *config.Config
	loader *analyze.Loader
	gen    *gen.Generator
}

// New creates a Driver loading packages relative to dir.
func New(cfg *config.Config, dir string) (*Driver, error) {
	g, err := gen.NewGenerator(cfg.GeneratorConfig())
	if err != nil {
		return nil, err
	}

	return &Driver{
		cfg:    cfg,
		loader: analyze.NewLoader(cfg.LoaderOptions(dir)),
		gen:    g,
	}, nil
}

// PackageResult holds the outcome for one package.
type PackageResult struct {
	Package   analyze.Package
	Records   []*plan.Record   // resolved records, in declaration order
	Artifacts []*emit.Artifacts // one per resolved record
	File      *gen.GeneratedFile
}

// Result is the outcome of a run. Diagnostics are ordered by package, then
// record declaration order.
type Result struct {
	Packages    []PackageResult
	Diagnostics diagnostic.List
}

// Failed reports whether any record produced an error diagnostic.
func (r *Result) Failed() bool {
	return r.Diagnostics.HasErrors()
}

// Records returns every resolved record.
func (r *Result) Records() []*plan.Record {
	var out []*plan.Record
	for _, p := range r.Packages {
		out = append(out, p.Records...)
	}

	return out
}

// Files returns the rendered files.
func (r *Result) Files() []gen.GeneratedFile {
	var out []gen.GeneratedFile

	for _, p := range r.Packages {
		if p.File != nil {
			out = append(out, *p.File)
		}
	}

	return out
}

// recordResult is the per-record outcome of the concurrent stage.
type recordResult struct {
	record    *plan.Record
	artifacts *emit.Artifacts
	diags     diagnostic.List
}

// Plan loads the packages matching patterns, then classifies and emits
// every record. Records are processed concurrently and independently; all
// diagnostics are collected.
func (d *Driver) Plan(ctx context.Context, patterns ...string) (*Result, error) {
	pkgs, err := d.loader.Load(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	type job struct {
		pkg, rec int
	}

	var (
		jobs    []job
		results = make([][]recordResult, len(pkgs))
	)

	for i, p := range pkgs {
		results[i] = make([]recordResult, len(p.Records))
		for j := range p.Records {
			jobs = append(jobs, job{pkg: i, rec: j})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs())

	for _, jb := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[jb.pkg][jb.rec] = d.processRecord(pkgs[jb.pkg].Records[jb.rec])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "processing records")
	}

	res := &Result{}

	for i, p := range pkgs {
		pr := PackageResult{Package: p}

		for _, rr := range results[i] {
			res.Diagnostics.Merge(rr.diags)

			if rr.record != nil {
				pr.Records = append(pr.Records, rr.record)
				pr.Artifacts = append(pr.Artifacts, rr.artifacts)
			}
		}

		// Every builder of a package shares one file and its imports.
		_, conflicts := emit.MergeImports(pr.Artifacts)
		res.Diagnostics.Merge(conflicts)

		res.Packages = append(res.Packages, pr)
	}

	logging.Logger().Debug("planned",
		zap.Int("packages", len(pkgs)),
		zap.Int("records", len(jobs)),
		zap.Int("errors", len(res.Diagnostics.Errors())))

	return res, nil
}

func (d *Driver) processRecord(rec analyze.Record) recordResult {
	resolved, diags := plan.Resolve(rec, d.cfg.Classifier())
	if resolved == nil {
		return recordResult{diags: diags}
	}

	artifacts := emit.Build(resolved, d.cfg.EmitOptions())

	conflicts := emit.Conflicts(artifacts)
	diags.Merge(conflicts)

	if conflicts.HasErrors() {
		return recordResult{diags: diags}
	}

	return recordResult{record: resolved, artifacts: artifacts, diags: diags}
}

// Render plans, then renders one file per package when no record failed.
func (d *Driver) Render(ctx context.Context, patterns ...string) (*Result, error) {
	res, err := d.Plan(ctx, patterns...)
	if err != nil || res.Failed() {
		return res, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs())

	for i := range res.Packages {
		pr := &res.Packages[i]
		if len(pr.Artifacts) == 0 {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			file, err := d.gen.Render(pr.Package, pr.Artifacts)
			if err != nil {
				return errors.Wrapf(err, "rendering %s", pr.Package.Path)
			}

			pr.File = file

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// Run renders every package and writes the files. Nothing is written when
// any record failed.
func (d *Driver) Run(ctx context.Context, patterns ...string) (*Result, error) {
	res, err := d.Render(ctx, patterns...)
	if err != nil || res.Failed() {
		return res, err
	}

	if err := gen.WriteFiles(res.Files()); err != nil {
		return nil, err
	}

	return res, nil
}

// Check renders every package in memory and returns the paths of generated
// files whose content on disk differs.
func (d *Driver) Check(ctx context.Context, patterns ...string) (*Result, []string, error) {
	res, err := d.Render(ctx, patterns...)
	if err != nil || res.Failed() {
		return res, nil, err
	}

	var stale []string

	for _, f := range res.Files() {
		changed, err := gen.Stale(f)
		if err != nil {
			return nil, nil, err
		}

		if changed {
			stale = append(stale, f.Path())
		}
	}

	return res, stale, nil
}

func (d *Driver) jobs() int {
	if d.cfg.Jobs > 0 {
		return d.cfg.Jobs
	}

	return runtime.GOMAXPROCS(0)
}
