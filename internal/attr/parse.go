package attr

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"

	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/match"
)

// EachKey is the only key recognized inside a builder annotation.
const EachKey = "each"

// Diagnostic codes reported by this package.
const (
	CodeMalformedTag  = "malformed_tag"
	CodeExpectedEach  = "expected_each"
	CodeInvalidAlias  = "invalid_alias"
	expectedEachUsage = "expected `each = \"...\"`"
)

// Alias is one accumulator name declared with each.
type Alias struct {
	Name string
	Pos  token.Position
}

// Names returns the alias names in declaration order.
func Names(aliases []Alias) []string {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, a.Name)
	}

	return out
}

// ParseEach collects the each aliases declared by every annotation whose key
// equals keyword, in declaration order and without deduplication.
//
// Every malformed entry of every annotation is reported. When at least one
// diagnostic is produced, no alias is returned.
func ParseEach(raws []Raw, keyword string) ([]Alias, diagnostic.List) {
	var (
		aliases []Alias
		diags   diagnostic.List
	)

	for _, raw := range raws {
		if raw.Key != keyword {
			continue
		}

		a, d := parseAnnotation(raw)
		aliases = append(aliases, a...)
		diags = append(diags, d...)
	}

	if len(diags) > 0 {
		return nil, diags
	}

	return aliases, nil
}

// lexeme is a scanned token with its byte offset in the annotation value.
type lexeme struct {
	tok token.Token
	lit string
	off int
}

func (l lexeme) text() string {
	if l.lit != "" {
		return l.lit
	}

	return l.tok.String()
}

// parseAnnotation parses one annotation value as a comma separated list of
// entries. An entry holding a scanner error reports that error instead of
// its shape; the other entries are still parsed.
func parseAnnotation(raw Raw) ([]Alias, diagnostic.List) {
	lexemes, lexErrs := scan(raw)
	entries := splitEntries(lexemes, len(raw.Value))

	var (
		aliases []Alias
		diags   diagnostic.List
	)

	byEntry := make(map[int]diagnostic.List, len(lexErrs))

	for _, e := range lexErrs {
		i := entryAt(entries, e.off)
		if i < 0 {
			diags = append(diags, e.diag)
			continue
		}

		byEntry[i] = append(byEntry[i], e.diag)
	}

	for i, entry := range entries {
		if errs, ok := byEntry[i]; ok {
			diags = append(diags, errs...)
			continue
		}

		alias, d, ok := parseEntry(raw, entry)
		if !ok {
			diags = append(diags, d)
			continue
		}

		aliases = append(aliases, alias)
	}

	return aliases, diags
}

// lexError is a scanner error at a byte offset of the annotation value.
type lexError struct {
	off  int
	diag diagnostic.Diagnostic
}

// scan tokenizes the annotation value. Scanner errors are returned with
// their offsets so they can be attached to entries.
func scan(raw Raw) ([]lexeme, []lexError) {
	var (
		errs []lexError
		s    scanner.Scanner
	)

	src := []byte(raw.Value)
	file := token.NewFileSet().AddFile("", -1, len(src))

	s.Init(file, src, func(p token.Position, msg string) {
		errs = append(errs, lexError{
			off:  p.Offset,
			diag: diagnostic.Errorf(shift(raw.Pos, p.Offset), CodeExpectedEach, "%s: %s", expectedEachUsage, msg),
		})
	}, 0)

	var out []lexeme

	for {
		p, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		// Automatic semicolon at the end of input.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		out = append(out, lexeme{tok: tok, lit: lit, off: file.Offset(p)})
	}

	return out, errs
}

// entryAt returns the index of the last entry starting at or before off,
// or -1 when off precedes every entry.
func entryAt(entries []entry, off int) int {
	idx := -1

	for i, e := range entries {
		if e.off > off {
			break
		}

		idx = i
	}

	return idx
}

// entry is the token run between two commas. off is where it starts.
type entry struct {
	lexemes []lexeme
	off     int
}

// splitEntries splits lexemes on top-level commas. A value with no tokens
// has no entries; otherwise every comma separates two entries, so an empty
// entry (a doubled or trailing comma) is kept and later reported.
func splitEntries(lexemes []lexeme, end int) []entry {
	if len(lexemes) == 0 {
		return nil
	}

	var (
		out []entry
		cur = entry{off: lexemes[0].off}
	)

	for _, l := range lexemes {
		if l.tok == token.COMMA {
			out = append(out, cur)
			cur = entry{off: l.off + 1}

			continue
		}

		if len(cur.lexemes) == 0 {
			cur.off = l.off
		}

		cur.lexemes = append(cur.lexemes, l)
	}

	if len(cur.lexemes) == 0 {
		cur.off = end
	}

	return append(out, cur)
}

// parseEntry checks one entry against the schema: IDENT "=" (STRING | IDENT).
func parseEntry(raw Raw, e entry) (Alias, diagnostic.Diagnostic, bool) {
	ls := e.lexemes

	if len(ls) != 3 || ls[0].tok != token.IDENT || ls[1].tok != token.ASSIGN ||
		(ls[2].tok != token.STRING && ls[2].tok != token.IDENT) {
		return Alias{}, malformed(raw, e), false
	}

	key, value := ls[0], ls[2]

	if key.lit != EachKey {
		d := diagnostic.Errorf(shift(raw.Pos, key.off), CodeExpectedEach, "%s, found key %q", expectedEachUsage, key.lit)
		if match.IsNearMiss(key.lit, EachKey) {
			d = d.WithSuggestions(fmt.Sprintf("did you mean `%s`?", EachKey))
		}

		return Alias{}, d, false
	}

	name := value.lit
	if value.tok == token.STRING {
		unq, err := strconv.Unquote(value.lit)
		if err != nil {
			return Alias{}, malformed(raw, e), false
		}

		name = unq
	}

	if !common.IsIdent(name) {
		return Alias{}, diagnostic.Errorf(shift(raw.Pos, value.off), CodeInvalidAlias,
			"invalid accumulator name %q: must be a Go identifier", name), false
	}

	return Alias{Name: name, Pos: shift(raw.Pos, value.off)}, diagnostic.Diagnostic{}, true
}

func malformed(raw Raw, e entry) diagnostic.Diagnostic {
	found := "nothing"
	if len(e.lexemes) > 0 {
		found = strconv.Quote(entryText(raw, e))
	}

	return diagnostic.Errorf(shift(raw.Pos, e.off), CodeExpectedEach, "%s, found %s", expectedEachUsage, found)
}

func entryText(raw Raw, e entry) string {
	last := e.lexemes[len(e.lexemes)-1]
	end := last.off + len(last.text())

	if end > len(raw.Value) || e.off > end {
		return raw.Value[e.off:]
	}

	return raw.Value[e.off:end]
}
