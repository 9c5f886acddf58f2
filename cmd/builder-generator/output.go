package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"builder-generator/internal/diagnostic"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	posColor     = color.New(color.Bold)
	helpColor    = color.New(color.FgCyan)
)

// errFailed is returned by commands after diagnostics were reported.
var errFailed = errors.New("generation failed")

// report prints diagnostics to stderr and returns errFailed when any of
// them is an error.
func (a *app) report(diags diagnostic.List) error {
	var err error
	if a.diagFormat == "json" {
		err = writeDiagnosticsJSON(a.stderr, diags)
	} else {
		writeDiagnostics(a.stderr, diags, a.maxDiagnostics)
	}

	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return errFailed
	}

	return nil
}

// writeDiagnostics prints one diagnostic per line as
// "file:line:col: severity: [code] message", followed by its suggestions.
func writeDiagnostics(w io.Writer, diags diagnostic.List, limit int) {
	for i, d := range diags {
		if limit > 0 && i == limit {
			fmt.Fprintf(w, "... and %d more\n", len(diags)-limit)
			break
		}

		sev := warningColor
		if d.IsError() {
			sev = errorColor
		}

		fmt.Fprintf(w, "%s: %s: [%s] %s\n", posColor.Sprint(location(d)), sev.Sprint(d.Severity), d.Code, d.Message)

		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "\t%s %s\n", helpColor.Sprint("help:"), s)
		}
	}

	if n := len(diags); n > 0 {
		fmt.Fprintf(w, "%d error(s), %d warning(s)\n", len(diags.Errors()), len(diags.Warnings()))
	}
}

// location is the diagnostic position relative to the working directory,
// or Record.Field when it has none.
func location(d diagnostic.Diagnostic) string {
	if !d.Pos.IsValid() {
		if d.Field != "" {
			return d.Record + "." + d.Field
		}

		return d.Record
	}

	pos := d.Pos
	if wd, err := os.Getwd(); err == nil && filepath.IsAbs(pos.Filename) {
		if rel, err := filepath.Rel(wd, pos.Filename); err == nil && !filepath.IsAbs(rel) {
			pos.Filename = rel
		}
	}

	return pos.String()
}

func writeDiagnosticsJSON(w io.Writer, diags diagnostic.List) error {
	if diags == nil {
		diags = diagnostic.List{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(diags), "encoding diagnostics")
}
