// Package errors provides structured diagnostic encoding (JSON and YAML)
// for velac's compile-phase errors.
package errors

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/velalang/velac/internal/schema"
)

// SchemaDiagnosticV1 tags every Diagnostic emitted by this package.
const SchemaDiagnosticV1 = "velac.diagnostic/v1"

// ToDeterministicJSON renders the Diagnostic with sorted keys, matching
// the rest of the toolchain's machine-readable output. A Diagnostic built
// outside this package with a stale or foreign schema tag is rejected
// rather than silently emitted under the wrong version.
func (d *Diagnostic) ToDeterministicJSON() ([]byte, error) {
	if !schema.Accepts(d.Schema, SchemaDiagnosticV1) {
		return nil, fmt.Errorf("diagnostic carries unsupported schema %q, want %s", d.Schema, SchemaDiagnosticV1)
	}
	data, err := schema.MarshalDeterministic(d)
	if err != nil {
		fallback := &Diagnostic{Schema: SchemaDiagnosticV1, Message: "diagnostic encoding failed"}
		return schema.MarshalDeterministic(fallback)
	}
	return schema.FormatJSON(data)
}

// SetCompactJSON toggles whether ToDeterministicJSON emits compact
// (single-line) or pretty-printed JSON, for `velac check -format=json
// -compact`.
func SetCompactJSON(compact bool) {
	schema.SetCompactMode(compact)
}

// ToYAML renders the Diagnostic as YAML, for `velac -format=yaml`.
func (d *Diagnostic) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// EncodeAllYAML renders a batch of diagnostics as a YAML sequence.
func EncodeAllYAML(diags []*Diagnostic) ([]byte, error) {
	return yaml.Marshal(diags)
}

// SafeEncode encodes any error as a Diagnostic, falling back to a bare
// message when err did not originate as a DiagnosticError. Never panics.
func SafeEncode(err error, phase string) []byte {
	if err == nil {
		return nil
	}
	diag, ok := AsDiagnostic(err)
	if !ok {
		diag = &Diagnostic{Schema: SchemaDiagnosticV1, Phase: phase, Code: "ERR000", Message: err.Error()}
	}
	data, _ := diag.ToDeterministicJSON()
	return data
}
