package diagnostic

import (
	"fmt"
	"go/token"
	"strings"

	"builder-generator/internal/common"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `json:"severity" yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code" yaml:"code"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Pos is where the problem was found. It may be invalid for
	// diagnostics that are not tied to source.
	Pos token.Position `json:"pos" yaml:"pos"`
	// Record names the record this relates to (if any).
	Record string `json:"record,omitempty" yaml:"record,omitempty"`
	// Field names the field this relates to (if any).
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Errorf builds an error diagnostic.
func Errorf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// Warnf builds a warning diagnostic.
func Warnf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// WithField attaches the record and field the diagnostic belongs to.
func (d Diagnostic) WithField(record, field string) Diagnostic {
	d.Record, d.Field = record, field
	return d
}

// WithSuggestions appends suggestions.
func (d Diagnostic) WithSuggestions(s ...string) Diagnostic {
	d.Suggestions = append(append([]string(nil), d.Suggestions...), s...)
	return d
}

// IsError reports whether the diagnostic is an error.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// String returns a formatted diagnostic string:
//
//	file.go:12:7: [code] message
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	} else if d.Record != "" {
		sb.WriteString(d.Record)
		if d.Field != "" {
			sb.WriteString("." + d.Field)
		}
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		sb.WriteString(" (" + strings.Join(d.Suggestions, "; ") + ")")
	}

	return sb.String()
}
