package errors

import (
	"encoding/json"
	"errors"

	"github.com/velalang/velac/internal/ast"
)

// Diagnostic is the canonical structured error type for every velac phase.
// All error builders return *Diagnostic, wrapped as a DiagnosticError so it
// survives errors.As() unwrapping.
type Diagnostic struct {
	Schema  string         `json:"schema" yaml:"schema"`
	Code    string         `json:"code" yaml:"code"`
	Phase   string         `json:"phase" yaml:"phase"`
	Message string         `json:"message" yaml:"message"`
	Pos     ast.SourcePos  `json:"pos,omitempty" yaml:"pos,omitempty"`
	Data    map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Cause   error          `json:"-" yaml:"-"`
}

// DiagnosticError wraps a Diagnostic as an error.
type DiagnosticError struct {
	Diag *Diagnostic
}

func (e *DiagnosticError) Error() string {
	if e.Diag == nil {
		return "unknown error"
	}
	if e.Diag.Pos != ast.NoPos {
		return e.Diag.Pos.String() + ": " + e.Diag.Code + ": " + e.Diag.Message
	}
	return e.Diag.Code + ": " + e.Diag.Message
}

func (e *DiagnosticError) Unwrap() error { return e.Diag.Cause }

// AsDiagnostic extracts a Diagnostic from an error chain.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de.Diag, true
	}
	return nil, false
}

// New builds a Diagnostic-backed error for the given phase code.
func New(code string, pos ast.SourcePos, message string) error {
	return &DiagnosticError{Diag: &Diagnostic{
		Schema:  SchemaDiagnosticV1,
		Code:    code,
		Phase:   Phase(code),
		Message: message,
		Pos:     pos,
	}}
}

// Wrap builds a Diagnostic-backed error that chains an underlying cause.
func Wrap(code string, pos ast.SourcePos, message string, cause error) error {
	return &DiagnosticError{Diag: &Diagnostic{
		Schema:  SchemaDiagnosticV1,
		Code:    code,
		Phase:   Phase(code),
		Message: message,
		Pos:     pos,
		Cause:   cause,
	}}
}

// ToJSON renders the Diagnostic as deterministic JSON.
func (d *Diagnostic) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(d)
	} else {
		data, err = json.MarshalIndent(d, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
